package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"student": {
		"course:view",
		"course:enroll",
		"progress:view-own",
		"progress:write-own",
		"cert:list-own",
	},
	"admin": {
		"*", // everything
	},
}
