package attr_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/vcard/attr"
)

func TestStructured_Decode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		attr string
		raw  string
		want [][]string
	}{
		{
			"full name",
			"N", "Doe;John;;Dr.;Jr.",
			[][]string{{"Doe"}, {"John"}, nil, {"Dr."}, {"Jr."}},
		},
		{
			"short name",
			"N", "a;b",
			[][]string{{"a"}, {"b"}, nil, nil, nil},
		},
		{
			"name lists",
			"N", `Doe;John,Paul;Q\, Jr;;`,
			[][]string{{"Doe"}, {"John", "Paul"}, {"Q, Jr"}, nil, nil},
		},
		{
			"empty name",
			"N", "",
			[][]string{nil, nil, nil, nil, nil},
		},
		{
			"excess components",
			"N", "a;b;c;d;e;f",
			[][]string{{"a"}, {"b"}, {"c"}, {"d"}, {"e"}, {"f"}},
		},
		{
			"address",
			"ADR", ";;123 Main St;Springfield;IL;62704;USA",
			[][]string{nil, nil, {"123 Main St"}, {"Springfield"}, {"IL"}, {"62704"}, {"USA"}},
		},
		{
			"geo",
			"GEO", "37.386013;-122.082932",
			[][]string{{"37.386013"}, {"-122.082932"}},
		},
		{
			"org only",
			"ORG", "Acme",
			[][]string{{"Acme"}},
		},
		{
			"org with units",
			"ORG", `Acme\, Inc.;Sales;EMEA`,
			[][]string{{"Acme, Inc."}, {"Sales"}, {"EMEA"}},
		},
		{
			"org empty unit",
			"ORG", "Acme;",
			[][]string{{"Acme"}, nil},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			a, ok := attr.New(c.attr).(*attr.Structured)
			if !ok {
				t.Fatalf("attr.New(%q) = %T, want *attr.Structured", c.attr, attr.New(c.attr))
			}
			if err := a.Decode(c.raw); err != nil {
				t.Fatalf("a.Decode(%q) error = %v, want nil", c.raw, err)
			}
			if diff := cmp.Diff(a.Components, c.want, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("a.Components = %q, want %q\ndiff (-got +want):\n%v", a.Components, c.want, diff)
			}
			if got := a.Raw(); got != c.raw {
				t.Errorf("a.Raw() = %q, want %q", got, c.raw)
			}
		})
	}
}

func TestStructured_Name(t *testing.T) {
	t.Parallel()

	a := attr.New("N").(*attr.Structured)
	raw := "Doe;John;;Dr.;Jr."
	if err := a.Decode(raw); err != nil {
		t.Fatalf("a.Decode(%q) error = %v, want nil", raw, err)
	}

	want := map[string][]string{
		attr.CompFamily:          {"Doe"},
		attr.CompGiven:           {"John"},
		attr.CompAdditional:      nil,
		attr.CompHonorificPrefix: {"Dr."},
		attr.CompHonorificSuffix: {"Jr."},
	}
	for name, vals := range want {
		if diff := cmp.Diff(a.Component(name), vals, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("a.Component(%q) = %q, want %q", name, a.Component(name), vals)
		}
	}
	if got := a.Encode(); got != raw {
		t.Errorf("a.Encode() = %q, want %q", got, raw)
	}
}

func TestStructured_Address(t *testing.T) {
	t.Parallel()

	a := attr.New("ADR").(*attr.Structured)
	raw := ";;123 Main St;Springfield;IL;62704;USA"
	if err := a.Decode(raw); err != nil {
		t.Fatalf("a.Decode(%q) error = %v, want nil", raw, err)
	}

	for name, val := range map[string]string{
		attr.CompStreet:     "123 Main St",
		attr.CompLocality:   "Springfield",
		attr.CompRegion:     "IL",
		attr.CompPostalCode: "62704",
		attr.CompCountry:    "USA",
	} {
		if got := a.Component(name); len(got) != 1 || got[0] != val {
			t.Errorf("a.Component(%q) = %q, want [%q]", name, got, val)
		}
	}
	if got := a.Component(attr.CompPOBox); len(got) != 0 {
		t.Errorf("a.Component(%q) = %q, want empty", attr.CompPOBox, got)
	}
	if got := a.Component("unknown"); got != nil {
		t.Errorf("a.Component(%q) = %q, want nil", "unknown", got)
	}
}

func TestStructured_SetComponent(t *testing.T) {
	t.Parallel()

	n := attr.New("N").(*attr.Structured)
	n.Decode("Doe") //nolint:errcheck
	if !n.SetComponent(attr.CompGiven, "Jane", "Ann") {
		t.Fatalf("n.SetComponent(%q) = false, want true", attr.CompGiven)
	}
	if got, want := n.Encode(), "Doe;Jane,Ann;;;"; got != want {
		t.Errorf("n.Encode() = %q, want %q", got, want)
	}
	if got, want := n.Render(&attr.RenderOptions{Original: true}), "N:Doe"; got != want {
		t.Errorf("n.Render(original) = %q, want %q", got, want)
	}
	if n.SetComponent("nickname", "x") {
		t.Errorf("n.SetComponent(%q) = true, want false", "nickname")
	}

	org := attr.NewStructured("ORG", attr.OrgSchema, []string{"Acme"})
	org.SetComponent(attr.CompUnit, "Sales", "R&D")
	if got, want := org.Encode(), "Acme;Sales;R&D"; got != want {
		t.Errorf("org.Encode() = %q, want %q", got, want)
	}
	if diff := cmp.Diff(org.Component(attr.CompUnit), []string{"Sales", "R&D"}); diff != "" {
		t.Errorf("org.Component(%q) diff (-got +want):\n%v", attr.CompUnit, diff)
	}
	org.SetComponent(attr.CompUnit)
	if got, want := org.Encode(), "Acme"; got != want {
		t.Errorf("org.Encode() = %q, want %q", got, want)
	}

	empty := attr.NewStructured("ORG", attr.OrgSchema)
	empty.SetComponent(attr.CompUnit, "Sales")
	if got, want := empty.Encode(), ";Sales"; got != want {
		t.Errorf("empty.Encode() = %q, want %q", got, want)
	}
}

func TestStructured_Encode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		attr, raw string
	}{
		{"N", "Doe;John;;Dr.;Jr."},
		{"N", `Doe;John,Paul;Q\, Jr;;`},
		{"N", "a;b;c;d;e;f"},
		{"ADR", ";;123 Main St;Springfield;IL;62704;USA"},
		{"ORG", `Acme\, Inc.;Sales;EMEA`},
		{"ORG", "Acme;"},
	}

	for _, c := range cases {
		a := attr.New(c.attr)
		if err := a.Decode(c.raw); err != nil {
			t.Fatalf("a.Decode(%q) error = %v, want nil", c.raw, err)
		}
		if got := a.Encode(); got != c.raw {
			t.Errorf("%s: a.Encode() = %q, want %q", c.attr, got, c.raw)
		}
	}
}

func TestStructured_Typed(t *testing.T) {
	t.Parallel()

	org := attr.New("ORG")
	org.Decode("Acme;Sales;EMEA") //nolint:errcheck

	want := attr.TypedValue{
		Type: attr.ValueStructured,
		Components: []attr.Component{
			{Name: attr.CompOrganization, Values: []string{"Acme"}},
			{Name: attr.CompUnit, Values: []string{"Sales"}},
			{Name: attr.CompUnit, Values: []string{"EMEA"}},
		},
	}
	if diff := cmp.Diff(org.Typed(), want); diff != "" {
		t.Errorf("org.Typed() diff (-got +want):\n%v", diff)
	}

	n := attr.New("N")
	n.Decode("a;b;c;d;e;f") //nolint:errcheck
	if got := n.Typed().Components[5].Name; got != "x-6" {
		t.Errorf("n.Typed().Components[5].Name = %q, want %q", got, "x-6")
	}
}

func TestStructured_CloneEqual(t *testing.T) {
	t.Parallel()

	a := attr.NewStructured("N", attr.NameSchema, []string{"Doe"}, []string{"John"})
	clone := a.Clone().(*attr.Structured)
	if !a.Equal(clone) {
		t.Fatalf("a.Equal(clone) = false, want true")
	}
	clone.Components[1][0] = "Jane"
	if a.Components[1][0] != "John" {
		t.Errorf("modifying the clone changed the original: %v", a)
	}
	if a.Equal(clone) {
		t.Errorf("a.Equal(modified clone) = true, want false")
	}
}
