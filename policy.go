package coercion

import (
	"fmt"
	"strings"
)

// Policy defines how coercion misses are reported
type Policy int

const (
	// PolicyDefault returns sentinel or nil on miss
	PolicyDefault Policy = iota
	// PolicyFail returns an error on miss
	PolicyFail
	// PolicyClassic returns value unchanged when it already has requested type
	PolicyClassic
)

func (p Policy) String() string {
	switch p {
	case PolicyDefault:
		return "default"
	case PolicyFail:
		return "fail"
	case PolicyClassic:
		return "classic"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy parses policy name
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return PolicyDefault, nil
	case "fail", "die", "strict":
		return PolicyFail, nil
	case "classic":
		return PolicyClassic, nil
	}
	return 0, fmt.Errorf("unknown policy: %q", name)
}
