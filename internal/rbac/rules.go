package rbac

// Default policy. Teachers grade and export; students read their grades.
var RolePermissions = map[string][]string{
	"siswa": {
		"results:view-own",
	},
	"guru": {
		"sheet:extract",
		"essay:analyze",
		"grade:create",
		"results:view",
		"export:run",
	},
	"admin": {
		"*", // everything
	},
}
