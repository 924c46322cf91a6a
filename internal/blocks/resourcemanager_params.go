package blocks

import "github.com/custodia-labs/gcpblocks/internal/core/domain"

// Name is the {+name} path parameter of Resource Manager methods.
func Name(desc string) domain.Field {
	return PathString("name", desc)
}

// Resource is the {+resource} path parameter of IAM methods.
func Resource(desc string) domain.Field {
	return PathString("resource", desc)
}

// ValidateOnly asks the API to validate the request without applying it.
func ValidateOnly() domain.Field {
	return QueryBool("validateOnly", "Set to true to perform validations necessary for the request, but not actually execute it.")
}

// UpdateMask lists the fields a patch should change.
func UpdateMask() domain.Field {
	return QueryString("updateMask", "Fields to be updated, as a comma-separated field mask.")
}

// ShowDeleted includes resources in DELETE_REQUESTED state.
func ShowDeleted() domain.Field {
	return QueryBool("showDeleted", "Controls whether resources in the DELETE_REQUESTED state are returned.")
}
