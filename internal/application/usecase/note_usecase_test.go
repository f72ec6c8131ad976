package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cliente360-api/internal/application/usecase"
	"github.com/jhoicas/cliente360-api/internal/domain/entity"
)

func noteAt(id string, pinned bool, updated time.Time) *entity.Note {
	return &entity.Note{ID: id, CustomerID: "c-001", Body: "nota " + id, Pinned: pinned, UpdatedAt: updated}
}

// El orden canónico es determinista: fijadas primero, luego última
// actualización descendente, ID como desempate final.
func TestSortNotes_OrdenCanonico(t *testing.T) {
	base := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	list := []*entity.Note{
		noteAt("n-3", false, base.Add(3*time.Hour)),
		noteAt("n-1", true, base.Add(1*time.Hour)),
		noteAt("n-4", false, base.Add(4*time.Hour)),
		noteAt("n-2", true, base.Add(2*time.Hour)),
	}

	usecase.SortNotes(list)

	got := []string{list[0].ID, list[1].ID, list[2].ID, list[3].ID}
	assert.Equal(t, []string{"n-2", "n-1", "n-4", "n-3"}, got,
		"fijadas primero (más reciente antes), luego las sueltas por recencia")
}

// Después de fijar una nota el reordenamiento es el mismo que produciría
// cualquier otro camino: no depende del orden de llegada.
func TestSortNotes_DeterministaTrasMutacion(t *testing.T) {
	base := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	build := func() []*entity.Note {
		return []*entity.Note{
			noteAt("n-1", false, base.Add(1*time.Hour)),
			noteAt("n-2", false, base.Add(2*time.Hour)),
			noteAt("n-3", false, base.Add(3*time.Hour)),
		}
	}

	a := build()
	a[0].Pinned = true // pin de n-1
	usecase.SortNotes(a)

	b := []*entity.Note{build()[2], build()[0], build()[1]} // otro orden de llegada
	b[1].Pinned = true
	usecase.SortNotes(b)

	require.Len(t, a, 3)
	assert.Equal(t, a[0].ID, b[0].ID)
	assert.Equal(t, a[1].ID, b[1].ID)
	assert.Equal(t, a[2].ID, b[2].ID)
}

// Empates exactos de fecha se resuelven por ID: el orden nunca es ambiguo.
func TestSortNotes_DesempatePorID(t *testing.T) {
	ts := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	list := []*entity.Note{
		noteAt("n-b", false, ts),
		noteAt("n-a", false, ts),
	}

	usecase.SortNotes(list)

	assert.Equal(t, "n-a", list[0].ID)
	assert.Equal(t, "n-b", list[1].ID)
}
