package compile_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trychooser/internal/compile"
	"trychooser/internal/domain"
	"trychooser/internal/reconcile"
)

func testDefinition() *domain.Definition {
	return &domain.Definition{
		Radios: []domain.Radio{{
			Name:     "b",
			Section:  "b",
			Choices:  []domain.Choice{{Value: "do"}, {Value: "d"}, {Value: "o"}},
			Selected: "do",
		}},
		Email: []domain.Radio{{
			Name:     "email",
			Choices:  []domain.Choice{{Value: "on"}, {Value: "--no-emails"}},
			Selected: "on",
		}},
		Groups: []domain.Group{
			{
				Name:    "platforms",
				Section: "p",
				Options: []domain.Option{
					{ID: "linux", Value: "linux"},
					{ID: "win32", Value: "win32"},
					{ID: "android-api-9", Value: "android-api-9", Project: "android"},
					{ID: "linux64-asan", Value: "linux64-asan", Nondefault: true},
				},
			},
			{
				Name:    "unittests",
				Section: "u",
				Options: []domain.Option{
					{ID: "xpcshell", Value: "xpcshell"},
					{ID: "reftest", Value: "reftest"},
				},
				Subgroups: []domain.Subgroup{
					{
						Name:  "mochitests",
						Value: "mochitests",
						Options: []domain.Option{
							{ID: "mochitest-1", Value: "mochitest-1"},
							{ID: "mochitest-2", Value: "mochitest-2"},
							{ID: "mochitest-gl", Value: "mochitest-gl", Nondefault: true},
						},
					},
					{
						Name:  "reftests",
						Value: "reftests",
						Options: []domain.Option{
							{ID: "crashtest", Value: "crashtest"},
							{ID: "jsreftest", Value: "jsreftest"},
						},
					},
				},
			},
			{
				Name:    "talos",
				Section: "t",
				Options: []domain.Option{
					{ID: "tp5o", Value: "tp5o"},
					{ID: "dromaeo", Value: "dromaeo"},
				},
			},
			{
				// Groups without a section are reconciled but never compiled.
				Name:    "extras",
				Options: []domain.Option{{ID: "extra", Value: "extra"}},
			},
		},
		Filters: []domain.FilterControl{
			{
				Section: "p",
				Options: []domain.FilterOption{
					{ID: "only-opt", Value: "opt"},
					{ID: "no-debug", Value: "-debug"},
					{ID: "win-all", Value: "windows,debug"},
				},
			},
			{
				Section: "u",
				Options: []domain.FilterOption{{ID: "u-linux", Value: "linux"}},
			},
		},
		Profile: &domain.Toggle{ID: "profile"},
	}
}

func compileAfter(t *testing.T, def *domain.Definition, events ...domain.Event) domain.Result {
	t.Helper()
	r := reconcile.New(def)
	st := r.Initial()
	for _, ev := range events {
		require.NoError(t, r.Apply(st, ev))
	}
	return compile.New(def).Compile(st)
}

func TestCompile_InitialStateChoosesNothing(t *testing.T) {
	res := compileAfter(t, testDefinition())

	assert.Equal(t, compile.NoJobsChosen, res.Syntax)
	assert.True(t, res.NoneChosen)
}

func TestCompile_SingleDefaultOption(t *testing.T) {
	res := compileAfter(t, testDefinition(), domain.Check("linux"))

	assert.Equal(t, "try: -b do -p linux -u none -t none", res.Syntax)
	assert.False(t, res.NoneChosen)
}

func TestCompile_NoneSelector(t *testing.T) {
	res := compileAfter(t, testDefinition(),
		domain.Check("linux"),
		domain.Check(domain.NoneSelector("platforms")),
	)

	assert.Equal(t, compile.NoJobsChosen, res.Syntax)
	assert.True(t, res.NoneChosen)
}

func TestCompile_NondefaultAppended(t *testing.T) {
	res := compileAfter(t, testDefinition(), domain.Check("linux"), domain.Check("linux64-asan"))
	assert.Contains(t, res.Syntax, "-p linux,linux64-asan ")

	res = compileAfter(t, testDefinition(),
		domain.Check(domain.AllSelector("platforms")),
		domain.Check("linux64-asan"),
	)
	assert.Contains(t, res.Syntax, "-p all,linux64-asan ")
}

func TestCompile_SubgroupCollapses(t *testing.T) {
	res := compileAfter(t, testDefinition(),
		domain.Check("linux"),
		domain.Check("xpcshell"),
		domain.Check("mochitests"),
	)

	assert.Equal(t, "try: -b do -p linux -u xpcshell,mochitests -t none", res.Syntax)
}

func TestCompile_PartialSubgroupNextToCompleteOne(t *testing.T) {
	res := compileAfter(t, testDefinition(),
		domain.Check("linux"),
		domain.Check("mochitests"),
		domain.Check("crashtest"),
		domain.Check("mochitest-gl"),
	)

	assert.Equal(t, "try: -b do -p linux -u mochitests,crashtest,mochitest-gl -t none", res.Syntax)
}

func TestCompile_PartialSubgroupEnumerates(t *testing.T) {
	res := compileAfter(t, testDefinition(),
		domain.Check("linux"),
		domain.Check("reftest"),
		domain.Check("mochitest-1"),
	)

	assert.Contains(t, res.Syntax, "-u reftest,mochitest-1 ")
}

func TestCompile_CollapseListsNondefaultProjects(t *testing.T) {
	def := &domain.Definition{
		Groups: []domain.Group{{
			Name:    "platforms",
			Section: "p",
			Options: []domain.Option{
				{ID: "linux", Value: "linux"},
				{ID: "android-x86", Value: "android-x86", Nondefault: true, Project: "android"},
			},
			Subgroups: []domain.Subgroup{{
				Name:  "b2g-all",
				Value: "b2g-all",
				Options: []domain.Option{
					{ID: "emu", Value: "emu"},
					{ID: "emu-kk", Value: "emu-kk"},
				},
			}},
		}},
		Filters: []domain.FilterControl{{
			Section: "p",
			Options: []domain.FilterOption{{ID: "opt", Value: "opt"}},
		}},
	}

	res := compileAfter(t, def,
		domain.Check("b2g-all"),
		domain.Check("android-x86"),
		domain.Check("opt"),
	)

	assert.Equal(t, "try: -p android-x86,b2g-all", res.Syntax)
	want := []domain.FilterGate{{Section: "p", Disabled: true, Opacity: 0.5}}
	if diff := cmp.Diff(want, res.Filters); diff != "" {
		t.Fatalf("filter gates mismatch (-want +got):\n%s", diff)
	}
}

func TestCompile_WholeGroupIsAll(t *testing.T) {
	res := compileAfter(t, testDefinition(),
		domain.Check("linux"),
		domain.Check(domain.AllSelector("unittests")),
		domain.Check("tp5o"),
	)

	assert.Equal(t, "try: -b do -p linux -u all -t tp5o", res.Syntax)
}

func TestCompile_Filters(t *testing.T) {
	res := compileAfter(t, testDefinition(),
		domain.Check("linux"),
		domain.Check("win32"),
		domain.Check("no-debug"),
		domain.Check("win-all"),
	)
	assert.Contains(t, res.Syntax, "-p linux[windows],win32[windows] ")

	res = compileAfter(t, testDefinition(),
		domain.Check("linux"),
		domain.Check("only-opt"),
		domain.Check("win-all"),
	)
	assert.Contains(t, res.Syntax, "-p linux[debug,opt,windows] ")
}

func TestCompile_FullyCancelledFiltersStillBracket(t *testing.T) {
	def := testDefinition()
	def.Filters[0].Options = append(def.Filters[0].Options, domain.FilterOption{ID: "debug", Value: "debug"})

	res := compileAfter(t, def, domain.Check("linux"), domain.Check("no-debug"), domain.Check("debug"))
	assert.Contains(t, res.Syntax, "-p linux[] ")
}

func TestCompile_PrivilegedProjectDisablesFilters(t *testing.T) {
	res := compileAfter(t, testDefinition(),
		domain.Check("linux"),
		domain.Check("android-api-9"),
		domain.Check("win-all"),
		domain.Check("xpcshell"),
		domain.Check("u-linux"),
	)

	assert.Equal(t, "try: -b do -p linux,android-api-9 -u xpcshell -t none", res.Syntax)
	want := []domain.FilterGate{
		{Section: "p", Disabled: true, Opacity: 0.5},
		{Section: "u", Disabled: true, Opacity: 0.5},
	}
	if diff := cmp.Diff(want, res.Filters); diff != "" {
		t.Fatalf("filter gates mismatch (-want +got):\n%s", diff)
	}
}

func TestCompile_AllDoesNotCountProjects(t *testing.T) {
	res := compileAfter(t, testDefinition(),
		domain.Check(domain.AllSelector("platforms")),
		domain.Check("only-opt"),
	)

	assert.Contains(t, res.Syntax, "-p all[opt] ")
	require.Len(t, res.Filters, 2)
	assert.False(t, res.Filters[0].Disabled)
	assert.Equal(t, 1.0, res.Filters[0].Opacity)
}

func TestCompile_CustomPrivilegedProjects(t *testing.T) {
	def := testDefinition()
	def.Groups[0].Options[1].Project = "windows"
	r := reconcile.New(def)
	st := r.Initial()
	for _, ev := range []domain.Event{domain.Check("win32"), domain.Check("only-opt")} {
		require.NoError(t, r.Apply(st, ev))
	}

	res := compile.New(def, compile.WithPrivilegedProjects("windows")).Compile(st)
	assert.Contains(t, res.Syntax, "-p win32 ")
	assert.True(t, res.Filters[0].Disabled)
}

func TestCompile_RadiosEmailAndProfile(t *testing.T) {
	res := compileAfter(t, testDefinition(),
		domain.Select("b", "o"),
		domain.Select("email", "--no-emails"),
		domain.Check("linux"),
		domain.Check("profile"),
	)

	assert.Equal(t, "try: -b o --no-emails -p linux -u none -t none mozharness: --spsProfile", res.Syntax)
}

func TestCompile_MissingValuesAreSkipped(t *testing.T) {
	def := testDefinition()
	def.Groups[2].Options[0].Value = ""
	def.Radios[0].Selected = ""

	res := compileAfter(t, def, domain.Check("linux"), domain.Check("tp5o"), domain.Check("dromaeo"))
	assert.Equal(t, "try: -p linux -u none -t all", res.Syntax)

	res = compileAfter(t, def, domain.Check("linux"), domain.Check("tp5o"))
	assert.Equal(t, "try: -p linux -u none -t ", res.Syntax)
}

func TestCompile_PrimarySection(t *testing.T) {
	def := testDefinition()
	def.PrimarySection = "u"

	res := compileAfter(t, def)
	assert.True(t, res.NoneChosen)

	res = compileAfter(t, def, domain.Check("xpcshell"))
	assert.False(t, res.NoneChosen)
	assert.Equal(t, "try: -b do -p none -u xpcshell -t none", res.Syntax)
}

func TestCompile_Idempotent(t *testing.T) {
	def := testDefinition()
	r := reconcile.New(def)
	st := r.Initial()
	for _, ev := range []domain.Event{domain.Check("linux"), domain.Check("mochitests"), domain.Check("win-all")} {
		require.NoError(t, r.Apply(st, ev))
	}
	c := compile.New(def)

	first := c.Compile(st)
	second := c.Compile(st)
	assert.Equal(t, first, second)
}
