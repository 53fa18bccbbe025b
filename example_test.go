package reginald_test

import (
	"fmt"

	"github.com/coregx/reginald"
)

// ExampleCompile demonstrates basic pattern compilation and matching.
func ExampleCompile() {
	re, err := reginald.Compile("a+(b|c)")
	if err != nil {
		panic(err)
	}

	fmt.Println(re.Matches("aaaab ab ac aaacab"))
	// Output: [(0, 5) (6, 2) (9, 2) (12, 4) (16, 2)]
}

// ExampleCompile_error shows the parse error for an unterminated group.
func ExampleCompile_error() {
	_, err := reginald.Compile("(")
	fmt.Println(err)
	// Output: error parsing regexp: missing closing ): `(`
}

// ExampleRegex_Test demonstrates whole-string matching.
func ExampleRegex_Test() {
	re := reginald.MustCompile("a{1,}c{,1}d{2,3}")
	fmt.Println(re.Test("acdd"))
	fmt.Println(re.Test("acddd!"))
	// Output:
	// true
	// false
}

// ExampleRegex_FindAllString demonstrates finding all string matches.
func ExampleRegex_FindAllString() {
	re := reginald.MustCompile("a*ab")
	fmt.Printf("%q\n", re.FindAllString("aab ab", -1))
	// Output: ["aab" "ab"]
}

// ExampleRegex_Find shows that offsets count characters, not bytes.
func ExampleRegex_Find() {
	re := reginald.MustCompile("[0-9]+")
	m, ok := re.Find("café 42")
	fmt.Println(m.Start, m.Len, ok)
	// Output: 5 2 true
}

// ExampleRegex_ReplaceAllString demonstrates literal replacement.
func ExampleRegex_ReplaceAllString() {
	re := reginald.MustCompile("(cat|dog)s?")
	fmt.Println(re.ReplaceAllString("cats and dogs", "pets"))
	// Output: pets and pets
}

// ExampleCompileWithConfig demonstrates custom configuration.
func ExampleCompileWithConfig() {
	config := reginald.DefaultConfig()
	config.EnablePrefilter = false

	re, err := reginald.CompileWithConfig("(foo|bar)[0-9]", config)
	if err != nil {
		panic(err)
	}
	fmt.Println(re.FindString("xx bar7"))
	// Output: bar7
}
