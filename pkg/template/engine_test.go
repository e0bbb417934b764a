package template

import (
	"errors"
	"testing"

	"github.com/goliatone/go-confgen/pkg/values"
)

func render(t *testing.T, tmpl Template, resolved map[string]values.Value) string {
	t.Helper()
	out, err := New().Render(tmpl, resolved)
	if err != nil {
		t.Fatalf("render %s: %v", tmpl.Label, err)
	}
	return out
}

func TestRender_RoundTrip(t *testing.T) {
	got := render(t, Template{Label: "greeting", Text: "Hello $NAME!"}, map[string]values.Value{
		"NAME": values.String("Alice"),
	})
	if got != "Hello Alice!" {
		t.Fatalf("got %q", got)
	}
}

func TestRender_BracedPlaceholder(t *testing.T) {
	got := render(t, Template{Label: "t", Text: "${HOST}name"}, map[string]values.Value{
		"HOST": values.String("db"),
	})
	if got != "dbname" {
		t.Fatalf("got %q", got)
	}
}

func TestRender_DelimiterChoiceDoesNotAffectSemantics(t *testing.T) {
	resolved := map[string]values.Value{"NAME": values.String("Alice")}

	dollar := render(t, Template{Label: "d", Text: "Hello $NAME!"}, resolved)
	pound := render(t, Template{Label: "p", Text: "Hello £NAME!", Delim: '£'}, resolved)
	if dollar != pound {
		t.Fatalf("delimiter changed resolution: %q vs %q", dollar, pound)
	}
}

func TestRender_DoubledDelimiterEscapes(t *testing.T) {
	got := render(t, Template{Label: "t", Text: "cost: $$$AMOUNT"}, map[string]values.Value{
		"AMOUNT": values.String("5"),
	})
	if got != "cost: $5" {
		t.Fatalf("got %q", got)
	}
}

func TestRender_BooleanValueRendersAsText(t *testing.T) {
	got := render(t, Template{Label: "t", Text: "debug = $DEBUG"}, map[string]values.Value{
		"DEBUG": values.Bool(false),
	})
	if got != "debug = false" {
		t.Fatalf("got %q", got)
	}
}

func TestRender_MissingValueFailsNamingThePlaceholder(t *testing.T) {
	_, err := New().Render(Template{Label: "nginx.conf.tpl", Text: "Host: $HOST"}, map[string]values.Value{})
	if err == nil {
		t.Fatal("expected a missing-value failure")
	}
	var missing *MissingValueError
	if !errors.As(err, &missing) {
		t.Fatalf("want *MissingValueError, got %T", err)
	}
	if missing.Name != "HOST" {
		t.Fatalf("want placeholder HOST, got %q", missing.Name)
	}
	if missing.Template != "nginx.conf.tpl" {
		t.Fatalf("want template identity, got %q", missing.Template)
	}
}

func TestRender_ExtraKeysIgnored(t *testing.T) {
	got := render(t, Template{Label: "t", Text: "Hello $NAME!"}, map[string]values.Value{
		"NAME":  values.String("Alice"),
		"EXTRA": values.String("unused"),
	})
	if got != "Hello Alice!" {
		t.Fatalf("extra keys leaked into output: %q", got)
	}
}

func TestRender_Idempotent(t *testing.T) {
	tmpl := Template{Label: "t", Text: "$A and ${B} and $$x"}
	resolved := map[string]values.Value{
		"A": values.String("1"),
		"B": values.Bool(true),
	}
	first := render(t, tmpl, resolved)
	second := render(t, tmpl, resolved)
	if first != second {
		t.Fatalf("renders differ: %q vs %q", first, second)
	}
}

func TestRender_InvalidPlaceholder(t *testing.T) {
	_, err := New().Render(Template{Label: "t", Text: "price: $ 5"}, nil)
	var bad *BadPlaceholderError
	if !errors.As(err, &bad) {
		t.Fatalf("want *BadPlaceholderError, got %v", err)
	}
	if bad.Offset != 7 {
		t.Fatalf("want offending byte 7, got %d", bad.Offset)
	}
}

func TestRender_IdentifierRules(t *testing.T) {
	// A digit cannot open an identifier, so $2x is not a placeholder.
	_, err := New().Render(Template{Label: "t", Text: "$2x"}, nil)
	var bad *BadPlaceholderError
	if !errors.As(err, &bad) {
		t.Fatalf("digit-led name must be invalid, got %v", err)
	}

	got := render(t, Template{Label: "t", Text: "$_V2 ok"}, map[string]values.Value{
		"_V2": values.String("yes"),
	})
	if got != "yes ok" {
		t.Fatalf("got %q", got)
	}
}

func TestRender_DelimiterCollidingWithSyntaxRejected(t *testing.T) {
	if _, err := New().Render(Template{Label: "t", Text: "xNAME", Delim: 'x'}, nil); err == nil {
		t.Fatal("identifier-character delimiters must be rejected")
	}
}

func TestRender_WithDelimiterOption(t *testing.T) {
	engine := New(WithDelimiter('%'))
	got, err := engine.Render(Template{Label: "t", Text: "server %HOST;"}, map[string]values.Value{
		"HOST": values.String("10.0.0.1"),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "server 10.0.0.1;" {
		t.Fatalf("got %q", got)
	}
}

func TestRender_NoPartialOutputOnFailure(t *testing.T) {
	out, err := New().Render(Template{Label: "t", Text: "ok $A bad $B"}, map[string]values.Value{
		"A": values.String("1"),
	})
	if err == nil {
		t.Fatal("expected failure")
	}
	if out != "" {
		t.Fatalf("failed render must not return partial output, got %q", out)
	}
}
