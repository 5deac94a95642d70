package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"member": {
		"submission:create",
		"submission:list-own",
		"report:view-own",
		"tools:list",
	},
	"admin": {
		"*", // everything
	},
}
