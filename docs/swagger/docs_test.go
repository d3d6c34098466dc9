package swagger_test

import (
	"encoding/json"
	"testing"

	_ "ghost-storage-gcs/docs/swagger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestDocRegistered(t *testing.T) {
	raw, err := swag.ReadDoc("swagger")
	require.NoError(t, err)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "Ghost GCS Storage API", doc.Info.Title)

	routes := map[string][]string{
		"/assets":        {"post", "delete"},
		"/assets/exists": {"get"},
		"/assets/read":   {"get"},
	}
	for path, methods := range routes {
		require.Contains(t, doc.Paths, path)
		for _, method := range methods {
			assert.Contains(t, doc.Paths[path], method, "%s %s", method, path)
		}
	}
}
