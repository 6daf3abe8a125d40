package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/nonogram/internal/domain"
)

func TestFilterKeepsCompatible(t *testing.T) {
	cands := Enumerate(domain.Constraint{1}, 3) // #.. / .#. / ..#
	got := Filter(cands, parseLine("?.?"))
	require.Len(t, got, 2)
	for _, c := range got {
		require.Equal(t, domain.Empty, c[1])
	}

	got = Filter(cands, parseLine("#??"))
	require.Equal(t, []domain.Line{parseLine("#..")}, got)
}

func TestFilterUnknownFactsKeepEverything(t *testing.T) {
	cands := Enumerate(domain.Constraint{2}, 5)
	require.Equal(t, cands, Filter(cands, parseLine("?????")))
}

func TestFilterIdempotent(t *testing.T) {
	cands := Enumerate(domain.Constraint{1, 2}, 6)
	facts := parseLine("?.????")
	once := Filter(cands, facts)
	twice := Filter(once, facts)
	require.Equal(t, once, twice)
}

func TestFilterCanEliminateEverything(t *testing.T) {
	cands := Enumerate(domain.Constraint{3}, 3)
	require.Empty(t, Filter(cands, parseLine(".??")))
}

func TestConsolidateSingleton(t *testing.T) {
	line := parseLine("#.#..")
	got := Consolidate([]domain.Line{line})
	require.Equal(t, line, got)
}

func TestConsolidateAgreementOnly(t *testing.T) {
	got := Consolidate([]domain.Line{
		parseLine("##..."),
		parseLine(".##.."),
		parseLine("..##."),
	})
	// the last cell is empty in all three; everything else is contested
	require.Equal(t, parseLine("????."), got)
}

func TestConsolidateEmptySetYieldsNil(t *testing.T) {
	require.Nil(t, Consolidate(nil))
}
