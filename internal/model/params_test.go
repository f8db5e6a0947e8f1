package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	p := Defaults()
	if _, ok := p.StaffPicks(); ok {
		t.Error("StaffPicks should be unset")
	}
	if p.Sort() != SortMagic {
		t.Errorf("Sort() = %v, want %v", p.Sort(), SortMagic)
	}
	if !p.IsDefault() {
		t.Error("Defaults().IsDefault() = false")
	}
	if p != (Params{}) {
		t.Error("Defaults() should equal the zero Params")
	}
}

func TestWith_LeavesReceiverUnchanged(t *testing.T) {
	base := Defaults().WithQuery("wallet")
	next := base.WithQuery("bugs").WithStaffPicks(true).WithSort(SortNewest)

	if q, _ := base.Query(); q != "wallet" {
		t.Errorf("base.Query() = %q, want %q", q, "wallet")
	}
	if _, ok := base.StaffPicks(); ok {
		t.Error("base.StaffPicks should still be unset")
	}
	if base.Sort() != SortMagic {
		t.Errorf("base.Sort() = %v, want magic", base.Sort())
	}
	if q, _ := next.Query(); q != "bugs" {
		t.Errorf("next.Query() = %q, want %q", q, "bugs")
	}
	if next.Sort() != SortNewest {
		t.Errorf("next.Sort() = %v, want newest", next.Sort())
	}
}

func TestAccessors(t *testing.T) {
	p := fullParams().WithIncludePOTD(true)

	for _, tc := range []struct {
		name string
		get  func() (bool, bool)
		want bool
	}{
		{"staffPicks", p.StaffPicks, true},
		{"hasVideo", p.HasVideo, true},
		{"starred", p.Starred, true},
		{"backed", p.Backed, false},
		{"social", p.Social, true},
		{"recommended", p.Recommended, true},
		{"includePOTD", p.IncludePOTD, true},
	} {
		got, ok := tc.get()
		if !ok || got != tc.want {
			t.Errorf("%s = (%v, %v), want (%v, true)", tc.name, got, ok, tc.want)
		}
	}

	if r, ok := p.SimilarTo(); !ok || r != projectTemplate {
		t.Errorf("SimilarTo() = (%v, %v)", r, ok)
	}
	if r, ok := p.Category(); !ok || r != categoryArt {
		t.Errorf("Category() = (%v, %v)", r, ok)
	}
	if s, ok := p.State(); !ok || s != StateLive {
		t.Errorf("State() = (%v, %v)", s, ok)
	}
	if n, ok := p.Page(); !ok || n != 1 {
		t.Errorf("Page() = (%d, %v)", n, ok)
	}
	if n, ok := p.PerPage(); !ok || n != 20 {
		t.Errorf("PerPage() = (%d, %v)", n, ok)
	}
	if n, ok := p.Seed(); !ok || n != 123 {
		t.Errorf("Seed() = (%d, %v)", n, ok)
	}
}

func TestEqual(t *testing.T) {
	a := Defaults().WithCategory(categoryArt).WithPage(2)
	b := Defaults().WithPage(2).WithCategory(categoryArt)
	if !a.Equal(b) {
		t.Errorf("%#v should equal %#v", a, b)
	}
	if a.Equal(b.WithCategory(categoryDocumentary)) {
		t.Error("params with different categories compared equal")
	}
	if Defaults().Equal(Defaults().WithBacked(false)) {
		t.Error("unset backed compared equal to backed=false")
	}
}

func TestWithout(t *testing.T) {
	full := fullParams().WithIncludePOTD(true)
	for _, f := range Fields() {
		t.Run(string(f), func(t *testing.T) {
			got := full.Without(f)
			if got.Equal(full) {
				t.Fatalf("Without(%s) did not change params", f)
			}
			if _, present := Encode(got).Get(string(f)); present {
				t.Errorf("Without(%s) still encodes the key", f)
			}
		})
	}

	if got := fullParams().Without(FieldSort).Sort(); got != SortMagic {
		t.Errorf("Without(sort).Sort() = %v, want magic", got)
	}
	if got := fullParams().Without(Field("bogus")); !got.Equal(fullParams()) {
		t.Error("Without(unknown field) changed params")
	}
}

func TestString(t *testing.T) {
	if got, want := Defaults().String(), "Params()"; got != want {
		t.Errorf("Defaults().String() = %q, want %q", got, want)
	}

	got := Defaults().WithStaffPicks(true).WithQuery("wallet").WithSort(SortPopular).String()
	want := `Params(staffPicks: true, query: "wallet", sort: popular)`
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestGoString(t *testing.T) {
	got := Defaults().WithCategory(categoryFilmAndVideo).GoString()
	for _, want := range []string{
		"staffPicks: nil",
		"category: category#11",
		"sort: magic",
		"includePOTD: nil",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("GoString() = %q, missing %q", got, want)
		}
	}
	if n := strings.Count(got, ": "); n != len(Fields()) {
		t.Errorf("GoString() lists %d fields, want %d", n, len(Fields()))
	}
}

func TestMarshalJSON(t *testing.T) {
	p := Defaults().WithBacked(false).WithCategory(categoryIllustration).WithState(StateSuccessful)
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"backed":false,"category":{"id":22},"state":"successful","sort":"magic"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}
