package spelling

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestService_Suggest(t *testing.T) {
	t.Parallel()

	svc := NewService([]string{
		"serendipity", "serenity", "cat", "bat", "rat", "hat", "mat", "believe", "receive",
	})

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "single transposition",
			query: "serndipity",
			want:  []string{"serendipity"},
		},
		{
			name:  "distance then alphabetical tie-break",
			query: "cap",
			// cat is distance 1; bat/hat/mat/rat are distance 2, alphabetical.
			want: []string{"cat", "bat", "hat"},
		},
		{
			name:  "exact match never suggested",
			query: "cat",
			want:  []string{"bat", "hat", "mat"},
		},
		{
			name:  "nothing within distance",
			query: "xylophone",
			want:  []string{},
		},
		{
			name:  "case insensitive",
			query: "Beleive",
			// receive is also two edits from beleive.
			want: []string{"believe", "receive"},
		},
		{
			name:  "empty query",
			query: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, svc.Suggest(tt.query))
		})
	}
}

func TestService_AddWord(t *testing.T) {
	t.Parallel()

	svc := NewService(nil)
	assert.Empty(t, svc.Suggest("ubiquitos"))

	svc.AddWord("Ubiquitous")
	assert.Equal(t, []string{"ubiquitous"}, svc.Suggest("ubiquitos"))
}

func TestService_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	svc := NewService([]string{"cat", "dog"})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			svc.AddWord("bird")
		}()
		go func() {
			defer wg.Done()
			_ = svc.Suggest("cot")
		}()
	}
	wg.Wait()

	assert.Contains(t, svc.Suggest("birt"), "bird")
}
