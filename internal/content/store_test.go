package content

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup_CaseFoldsOnly(t *testing.T) {
	s := New(map[string]string{"Ursa Minor": "Little bear. "}, map[string]string{"orion": "Hunter."})

	v, ok := s.Info("URSA MINOR")
	require.True(t, ok)
	require.Equal(t, "Little bear. ", v)

	_, ok = s.Info("ursa-minor")
	require.False(t, ok)
	_, ok = s.Info(" ursa minor")
	require.False(t, ok)
	_, ok = s.Info("")
	require.False(t, ok)

	_, ok = s.Myth("ursa minor")
	require.False(t, ok)
	v, ok = s.Myth("Orion")
	require.True(t, ok)
	require.Equal(t, "Hunter.", v)
}

func TestNew_CopiesInput(t *testing.T) {
	info := map[string]string{"lyra": "Lyre."}
	s := New(info, nil)
	info["lyra"] = "changed"
	delete(info, "lyra")

	v, ok := s.Info("lyra")
	require.True(t, ok)
	require.Equal(t, "Lyre.", v)
}

func TestDefaults(t *testing.T) {
	s, err := Defaults()
	require.NoError(t, err)

	info, myth := s.Len()
	require.Positive(t, info)
	require.Positive(t, myth)

	_, ok := s.Info("ursa minor")
	require.True(t, ok)
	_, ok = s.Myth("ursa minor")
	require.True(t, ok)

	// Coverage differs between the tables.
	_, ok = s.Info("camelopardalis")
	require.True(t, ok)
	_, ok = s.Myth("camelopardalis")
	require.False(t, ok)
}

type fakeGetter struct {
	maps map[string]map[string]string
	err  error
}

func (f *fakeGetter) GetStringMap(_ context.Context, name string) (map[string]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	m, ok := f.maps[name]
	if !ok {
		return nil, fmt.Errorf("parameter not found: %s", name)
	}
	return m, nil
}

func TestLoad_FromParameters(t *testing.T) {
	g := &fakeGetter{maps: map[string]map[string]string{
		"/star-gazer/content/constellation-info": {"Draco": "The dragon. "},
		"/star-gazer/content/constellation-myth": {"draco": "Ladon guarded the golden apples."},
	}}

	s, err := Load(context.Background(), g, "/star-gazer/")
	require.NoError(t, err)

	v, ok := s.Info("draco")
	require.True(t, ok)
	require.Equal(t, "The dragon. ", v)
	_, ok = s.Info("orion")
	require.False(t, ok)
}

func TestLoad_EmptyPrefixUsesDefaults(t *testing.T) {
	s, err := Load(context.Background(), nil, "  ")
	require.NoError(t, err)
	_, ok := s.Info("orion")
	require.True(t, ok)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(context.Background(), nil, "/p")
	require.ErrorContains(t, err, "must not be nil")

	_, err = Load(context.Background(), &fakeGetter{err: errors.New("throttled")}, "/p")
	require.ErrorContains(t, err, "load info table")
	require.ErrorContains(t, err, "throttled")

	g := &fakeGetter{maps: map[string]map[string]string{"/p/content/constellation-info": {}}}
	_, err = Load(context.Background(), g, "/p")
	require.ErrorContains(t, err, "load myth table")
}
