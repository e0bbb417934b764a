package confgen_test

import (
	"context"
	"testing"
	"testing/fstest"

	confgen "github.com/goliatone/go-confgen"
	"github.com/goliatone/go-confgen/pkg/manifest"
	"github.com/goliatone/go-confgen/pkg/orchestrator"
)

func TestGenerate(t *testing.T) {
	files := map[string]string{}
	fsys := fstest.MapFS{
		"app.env.tpl": &fstest.MapFile{Data: []byte("APP=$PROJECT_NAME\nHTTPS=$USE_HTTPS\n")},
	}

	err := confgen.Generate(context.Background(), confgen.Request{
		Questions: []confgen.Question{
			confgen.Text("PROJECT_NAME", "Project name", "demo"),
			confgen.Boolean("USE_HTTPS", "Serve over HTTPS?", true),
		},
		Manifest: manifest.Manifest{Targets: []manifest.Target{
			{Template: "app.env.tpl", Output: "app.env"},
		}},
	},
		orchestrator.WithTemplateFS(fsys),
		orchestrator.WithWriteFunc(func(path string, data []byte) error {
			files[path] = string(data)
			return nil
		}),
	)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if got := files["app.env"]; got != "APP=demo\nHTTPS=true\n" {
		t.Fatalf("app.env:\n%s", got)
	}
}
