// Package resourcemanager declares the Cloud Resource Manager v3 blocks.
package resourcemanager

import (
	"net/http"

	"github.com/custodia-labs/gcpblocks/internal/blocks"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

var catalog = blocks.NewCatalog(domain.ServiceResourceManager)

// Blocks returns every Resource Manager block.
func Blocks() []domain.Block {
	return catalog.Blocks()
}

// registerIAM declares getIamPolicy, setIamPolicy and testIamPermissions for
// a resource collection. They share one shape across folders, organizations,
// projects, tag keys and tag values.
func registerIAM(resource, noun, example string) []domain.Block {
	target := blocks.Resource("REQUIRED: The resource for which the policy is being requested, e.g. " + example + ".")
	return []domain.Block{
		catalog.Register(domain.Block{
			ID:          "resourcemanager." + resource + ".getIamPolicy",
			Name:        "Get " + noun + " IAM Policy",
			Description: "Gets the access control policy for a " + noun + ". The returned policy may be empty if no such policy or resource exists.",
			HTTPMethod:  http.MethodPost,
			Path:        "v3/{+resource}:getIamPolicy",
			Fields: []domain.Field{
				target,
				blocks.Body("GetIamPolicyRequest, e.g. {\"options\": {\"requestedPolicyVersion\": 3}}."),
			},
			Scopes:  blocks.ResourceManagerRead,
			DocsURL: blocks.ResourceManagerDocs(resource, "getIamPolicy"),
		}),
		catalog.Register(domain.Block{
			ID:          "resourcemanager." + resource + ".setIamPolicy",
			Name:        "Set " + noun + " IAM Policy",
			Description: "Sets the access control policy on a " + noun + ", replacing any existing policy.",
			HTTPMethod:  http.MethodPost,
			Path:        "v3/{+resource}:setIamPolicy",
			Fields: []domain.Field{
				target,
				blocks.Required(blocks.BodyObject("policy", "The complete policy to be applied to the resource.")),
				blocks.BodyString("updateMask", "Fields of the policy to modify. Only the fields in the mask are modified."),
			},
			Scopes:  blocks.ResourceManagerWrite,
			DocsURL: blocks.ResourceManagerDocs(resource, "setIamPolicy"),
		}),
		catalog.Register(domain.Block{
			ID:          "resourcemanager." + resource + ".testIamPermissions",
			Name:        "Test " + noun + " IAM Permissions",
			Description: "Returns the permissions that the caller has on the specified " + noun + ".",
			HTTPMethod:  http.MethodPost,
			Path:        "v3/{+resource}:testIamPermissions",
			Fields: []domain.Field{
				target,
				blocks.Required(blocks.BodyArray("permissions", "The set of permissions to check, e.g. [\"resourcemanager.projects.get\"].")),
			},
			Scopes:  blocks.ResourceManagerRead,
			DocsURL: blocks.ResourceManagerDocs(resource, "testIamPermissions"),
		}),
	}
}
