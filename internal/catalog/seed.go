package catalog

// seedCourses is the demo catalog served when COURSES_PATH is not set.
var seedCourses = []Course{
	{
		ID:    "101",
		Title: "Web Development Fundamentals",
		Lessons: []Lesson{
			{ID: "1", Title: "Introduction to HTML"},
			{ID: "2", Title: "Styling with CSS"},
			{ID: "3", Title: "JavaScript Basics"},
			{ID: "4", Title: "The DOM"},
			{ID: "5", Title: "Building a Project"},
		},
		Quiz: []QuizQuestion{
			{Prompt: "Which tag defines a hyperlink?", Choices: []string{"<a>", "<link>", "<href>", "<url>"}, AnswerKey: 0},
			{Prompt: "Which property sets text color?", Choices: []string{"font-style", "color", "text-fill", "paint"}, AnswerKey: 1},
			{Prompt: "Which keyword declares a block-scoped variable?", Choices: []string{"var", "def", "let", "dim"}, AnswerKey: 2},
			{Prompt: "document.querySelector returns…", Choices: []string{"all matches", "the first match", "a NodeList", "an id"}, AnswerKey: 1},
			{Prompt: "CSS stands for…", Choices: []string{"Cascading Style Sheets", "Creative Style System", "Computed Style Syntax", "none"}, AnswerKey: 0},
		},
	},
	{
		ID:    "102",
		Title: "Data Analysis with Python",
		Lessons: []Lesson{
			{ID: "1", Title: "Python Refresher"},
			{ID: "2", Title: "NumPy Arrays"},
			{ID: "3", Title: "DataFrames with pandas"},
			{ID: "4", Title: "Visualization"},
		},
		Quiz: []QuizQuestion{
			{Prompt: "Which library provides the DataFrame?", Choices: []string{"numpy", "pandas", "matplotlib", "scipy"}, AnswerKey: 1},
			{Prompt: "np.arange(3) yields…", Choices: []string{"[1 2 3]", "[0 1 2]", "[0 1 2 3]", "[3]"}, AnswerKey: 1},
			{Prompt: "df.head() shows…", Choices: []string{"last rows", "first rows", "column types", "index"}, AnswerKey: 1},
			{Prompt: "Which call draws a line chart?", Choices: []string{"plt.plot", "plt.bar", "plt.pie", "plt.hist"}, AnswerKey: 0},
		},
	},
	{
		ID:    "103",
		Title: "Digital Marketing Essentials",
		Lessons: []Lesson{
			{ID: "1", Title: "Marketing Funnels"},
			{ID: "2", Title: "SEO Basics"},
			{ID: "3", Title: "Content Strategy"},
		},
		// no quiz: progress is lessons-only for this course
	},
}
