package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocListsAPI(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var spec struct {
		BasePath string                     `json:"basePath"`
		Paths    map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &spec))

	assert.Equal(t, "/v1", spec.BasePath)
	assert.NotEmpty(t, spec.Paths)

	for _, path := range []string{
		"/auth/login",
		"/auth/register",
		"/users/me",
		"/initiatives",
		"/initiatives/{id}",
		"/search",
		"/recommendations",
		"/recommendations/user/{id}",
		"/engagement/save",
		"/engagement/apply",
		"/engagement/applications/{id}/status",
	} {
		assert.Contains(t, spec.Paths, path)
	}
}
