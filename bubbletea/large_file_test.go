// Large file tests check that comparing multi-megabyte files stays
// interactive: building the model, rendering a page and searching all touch
// only what they need.
package bubbletea_test

import (
	"runtime"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/dring"
	"github.com/fwojciec/dring/bubbletea"
	"github.com/fwojciec/dring/lipgloss"
	"github.com/stretchr/testify/assert"
)

// generateLargePair returns two buffers of size n that differ every stride
// bytes.
func generateLargePair(n, stride int) *dring.Comparison {
	a := make([]byte, n)
	b := make([]byte, n)
	for i := range a {
		a[i] = byte(i)
		b[i] = byte(i)
		if i%stride == 0 {
			b[i] ^= 0xff
		}
	}
	return newComparison(a, b)
}

func TestLargeFile_RenderAndView(t *testing.T) {
	t.Parallel()

	cmp := generateLargePair(8<<20, 4096)

	model := bubbletea.NewModel(cmp, bubbletea.WithTheme(lipgloss.DefaultTheme()))
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model = updated.(bubbletea.Model)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	model = updated.(bubbletea.Model)

	assert.Equal(t, cmp.Len()-1, model.Cursor())
	assert.NotEmpty(t, model.View())
}

func TestLargeFile_PerformanceBounds(t *testing.T) {
	t.Parallel()

	var memBefore runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&memBefore)

	start := time.Now()

	cmp := generateLargePair(8<<20, 4096)
	model := bubbletea.NewModel(cmp, bubbletea.WithTheme(lipgloss.DefaultTheme()))
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model = updated.(bubbletea.Model)

	for _, msg := range keys("/", "00 01 02 03", "enter", "n", "n", "]") {
		updated, _ = model.Update(msg)
		model = updated.(bubbletea.Model)
	}
	view := model.View()

	totalTime := time.Since(start)

	var memAfter runtime.MemStats
	runtime.ReadMemStats(&memAfter)
	memUsed := memAfter.Alloc - memBefore.Alloc

	assert.NotEmpty(t, view)
	assert.Equal(t, 8<<20/256, model.Matches().Len())
	assert.Less(t, totalTime, 5*time.Second, "Total time exceeded 5s")
	// Generous bound to absorb parallel test noise.
	assert.Less(t, memUsed, uint64(300*1024*1024), "Memory usage exceeded 300MB")
}

// benchResult prevents compiler from optimizing away benchmark results.
var benchResult any

func BenchmarkLargeFile_Render(b *testing.B) {
	cmp := generateLargePair(8<<20, 4096)
	msg := tea.WindowSizeMsg{Width: 120, Height: 40}

	b.ResetTimer()
	b.ReportAllocs()

	var result string
	for i := 0; i < b.N; i++ {
		model := bubbletea.NewModel(cmp, bubbletea.WithTheme(lipgloss.DefaultTheme()))
		updated, _ := model.Update(msg)
		result = updated.(bubbletea.Model).View()
	}
	benchResult = result
}
