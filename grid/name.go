package grid

import (
	"strconv"
	"strings"
)

// Named is an object that carries a name.
type Named interface {
	Name() string
}

// NameMustBeValid panics if the name does not follow the naming convention.
// There are several rules that a name must follow.
//  1. It must be organized in a hierarchical structure. For example, a name
//     "Sim.Board" is valid, but "Sim.Board." is not.
//  2. Individual names must not be empty. For example, "Sim..Board" is not
//     valid.
//  3. Individual names must be named in capitalized CamelCase style.
//     For example, "Sim.board" is not valid.
//  4. Grids in a series must be named using square-bracket notation, such as
//     "Board[0]".
func NameMustBeValid(name string) {
	defer func() {
		if r := recover(); r != nil {
			panic("Name " + name + " is not valid: " + r.(string))
		}
	}()

	for _, token := range strings.Split(name, ".") {
		tokenMustBeValid(token)
	}
}

func tokenMustBeValid(token string) {
	bracketMustMatch(token)

	parts := strings.Split(token, "[")
	elemName := parts[0]

	if elemName == "" {
		panic("Name element must not be empty")
	}

	for _, c := range []string{"_", "\"", "'", "-"} {
		if strings.Contains(elemName, c) {
			panic("Name element must not contain " + c)
		}
	}

	if elemName[0] < 'A' || elemName[0] > 'Z' {
		panic("Name element must start with a capital letter")
	}

	for _, part := range parts[1:] {
		index := strings.TrimSuffix(part, "]")
		if _, err := strconv.Atoi(index); err != nil {
			panic("Name index must be integer")
		}
	}
}

func bracketMustMatch(token string) {
	openBracketCount := 0
	for _, c := range token {
		switch c {
		case '[':
			openBracketCount++
		case ']':
			openBracketCount--
			if openBracketCount < 0 {
				panic("Name bracket must match")
			}
		}
	}

	if openBracketCount != 0 {
		panic("Name bracket must match")
	}
}
