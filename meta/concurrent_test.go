package meta

import (
	"reflect"
	"sync"
	"testing"
)

// TestConcurrentSearch tests that one Engine can be shared by many
// goroutines. Run with -race.
func TestConcurrentSearch(t *testing.T) {
	patterns := []string{
		`hello`,       // UsePrefilter (memmem)
		`[0-z]+`,      // UseNFA (class too large)
		`(foo|bar)x*`, // UsePrefilter (aho-corasick)
		`.a`,          // UseNFA
	}
	text := "hello foo123 barxx 42 hello ba"

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			engine := mustCompile(t, pattern, DefaultConfig())
			want := engine.FindAll(text, -1)

			var wg sync.WaitGroup
			errs := make(chan string, 8)
			for g := 0; g < 8; g++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := 0; i < 100; i++ {
						if got := engine.FindAll(text, -1); !reflect.DeepEqual(got, want) {
							errs <- "FindAll diverged"
							return
						}
						if engine.IsMatch(text) != (len(want) > 0) {
							errs <- "IsMatch diverged"
							return
						}
					}
				}()
			}
			wg.Wait()
			close(errs)
			for e := range errs {
				t.Error(e)
			}
		})
	}
}
