package phrase

import (
	"testing"

	"github.com/abdul-hamid-achik/respec/packages/core/classify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitWords(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		words      []string
	}{
		{"camel case", "FullTank", []string{"Full", "Tank"}},
		{"snake case", "has_engine", []string{"has", "engine"}},
		{"single word", "Car", []string{"Car"}},
		{"acronym then word", "APIController", []string{"API", "Controller"}},
		{"acronym run", "HTTPSConnection", []string{"HTTPS", "Connection"}},
		{"trailing acronym", "ParseJSON", []string{"Parse", "JSON"}},
		{"digits do not split", "User2Name", []string{"User2Name"}},
		{"mixed camel and snake", "The_UserIsHere", []string{"The", "User", "Is", "Here"}},
		{"empty", "", nil},
		{"only separators", "___", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.words, SplitWords(tt.identifier))
		})
	}
}

func TestFormatObjectRole(t *testing.T) {
	f := NewFormatter()

	tests := []struct {
		name     string
		stripped string
		phrase   string
	}{
		{"consonant start", "Car", "a Car"},
		{"vowel start", "Example", "an Example"},
		{"acronym preserved", "APIController", "an API Controller"},
		{"multi word", "FuelPump", "a Fuel Pump"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Format(tt.stripped, classify.RoleObject)
			require.NoError(t, err)
			assert.Equal(t, tt.phrase, got)
		})
	}
}

func TestFormatContextRoles(t *testing.T) {
	f := NewFormatter()

	tests := []struct {
		name     string
		stripped string
		role     classify.Role
		phrase   string
	}{
		{"with", "FullTank", classify.RoleWith, "with Full Tank"},
		{"without", "Fuel", classify.RoleWithout, "without Fuel"},
		{"when common words lowered", "TheUserIsLoggedIn", classify.RoleWhen, "when the User is Logged In"},
		{"particle keeps its case", "LoggedIn", classify.RoleWhen, "when Logged In"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Format(tt.stripped, tt.role)
			require.NoError(t, err)
			assert.Equal(t, tt.phrase, got)
		})
	}
}

func TestFormatExampleRole(t *testing.T) {
	f := NewFormatter()

	tests := []struct {
		name     string
		stripped string
		phrase   string
	}{
		{"snake case stays lowercase", "has_engine", "has engine"},
		{"multi word", "drive_long_distance", "drive long distance"},
		{"first common word untouched", "is_ready", "is ready"},
		{"later common word lowered", "engine_Is_ready", "engine is ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Format(tt.stripped, classify.RoleExample)
			require.NoError(t, err)
			assert.Equal(t, tt.phrase, got)
		})
	}
}

func TestFormatEmptyPhrase(t *testing.T) {
	f := NewFormatter()

	_, err := f.Format("", classify.RoleObject)
	assert.ErrorIs(t, err, ErrEmptyPhrase)

	_, err = f.Format("___", classify.RoleWhen)
	assert.ErrorIs(t, err, ErrEmptyPhrase)
}

func TestFormatterExtraCommonWords(t *testing.T) {
	f := NewFormatter("tank")

	got, err := f.Format("FullTank", classify.RoleWith)
	require.NoError(t, err)
	assert.Equal(t, "with Full tank", got)
}

func TestLegible(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		phrase     string
	}{
		{"camel split only", "SomeThing", "Some Thing"},
		{"common words kept", "TheCar", "The Car"},
		{"bare prefix", "When", "When"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.phrase, Legible(tt.identifier))
		})
	}
}
