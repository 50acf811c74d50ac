package greeting

import (
	"fmt"
	"strconv"
	"strings"
)

// Member is a person the greeting addresses: a display name plus the
// Discord user ID used for the mention.
type Member struct {
	Name string
	ID   uint64
}

// Mention returns the Discord mention markup for the member.
func (m Member) Mention() string {
	return fmt.Sprintf("<@%d>", m.ID)
}

// ParseMembers parses a comma-separated list of name,id pairs, e.g.
// "alice,111,bob,222". Pairs with a non-numeric ID and a trailing
// unpaired name are skipped silently.
func ParseMembers(s string) []Member {
	fields := strings.Split(s, ",")

	var members []Member
	for i := 0; i+1 < len(fields); i += 2 {
		name := strings.TrimSpace(fields[i])
		id, err := strconv.ParseUint(strings.TrimSpace(fields[i+1]), 10, 64)
		if err != nil {
			continue
		}
		members = append(members, Member{Name: name, ID: id})
	}
	return members
}
