// Package sorter provides class-list ordering policies for the formatter.
// The formatter core treats ordering as an external concern: it hands a raw
// class list to a Sorter and splices the result back into the output. No
// utility-class semantics are interpreted here; a policy is ordering data
// supplied by the user.
package sorter

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Identity returns class lists unchanged. Useful when only boundary
// handling and whitespace normalization are wanted.
type Identity struct{}

// Sort returns classList as-is.
func (Identity) Sort(classList string) string {
	return classList
}

// Policy orders classes by their rank in an externally supplied list.
// Classes absent from the policy keep their relative order and sort ahead
// of ranked ones, so unknown names cluster at the front of the list.
type Policy struct {
	rank map[string]int
}

// NewPolicy builds a policy from an ordered list of class names. Later
// duplicates of a name do not override its first rank.
func NewPolicy(order []string) *Policy {
	rank := make(map[string]int, len(order))
	for i, name := range order {
		if _, ok := rank[name]; !ok {
			rank[name] = i
		}
	}
	return &Policy{rank: rank}
}

// Sort reorders the whitespace-separated classes in classList by policy
// rank. The sort is stable, and the output is joined with single spaces;
// the caller is responsible for any boundary whitespace it wants kept.
func (p *Policy) Sort(classList string) string {
	fields := strings.Fields(classList)
	sort.SliceStable(fields, func(i, j int) bool {
		return p.rankOf(fields[i]) < p.rankOf(fields[j])
	})
	return strings.Join(fields, " ")
}

func (p *Policy) rankOf(name string) int {
	if r, ok := p.rank[name]; ok {
		return r
	}
	return -1
}

// LoadPolicy reads an ordering policy file: one class name per line.
// Blank lines and lines starting with # are ignored.
func LoadPolicy(path string) (*Policy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open order file: %w", err)
	}
	defer f.Close()

	var order []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		order = append(order, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read order file: %w", err)
	}

	return NewPolicy(order), nil
}
