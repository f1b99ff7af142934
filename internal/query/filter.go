package query

import (
	"strconv"
	"strings"
)

// ===========================================================================
// Filters
// A filter value that is empty, blank or "all" does not constrain the
// result. Every active filter is ANDed with the others
// ===========================================================================

// All sentinel value meaning "no constraint"
const All = "all"

// IsUnconstrained reports whether v places no constraint on a listing
func IsUnconstrained(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, All)
}

// Normalize returns the trimmed value, or "" when v is unconstrained
func Normalize(v string) string {
	if IsUnconstrained(v) {
		return ""
	}
	return strings.TrimSpace(v)
}

// ContainsFold case-insensitive substring match
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// LikePattern builds a lowercase "%substr%" pattern for
// `LOWER(col) LIKE ? ESCAPE '\'`, escaping the LIKE wildcards in substr
func LikePattern(substr string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(substr)) + "%"
}

// IDFilter a foreign id constraint (group, channel, label)
type IDFilter struct {
	// Active the caller asked for a constraint
	Active bool

	// ID the parsed id, only meaningful when Valid
	ID uint

	// Valid the raw value parsed as a positive integer
	Valid bool
}

// ParseIDFilter parses a raw foreign id filter value
func ParseIDFilter(raw string) IDFilter {
	raw = Normalize(raw)
	if raw == "" {
		return IDFilter{}
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return IDFilter{Active: true}
	}
	return IDFilter{Active: true, ID: uint(n), Valid: true}
}

// MatchesNothing the filter is active but can never match a record
func (f IDFilter) MatchesNothing() bool {
	return f.Active && !f.Valid
}

// Matches reports whether id satisfies the filter
func (f IDFilter) Matches(id uint) bool {
	if !f.Active {
		return true
	}
	return f.Valid && f.ID == id
}

// UserFilter filters of GET /api/users
type UserFilter struct {
	Search  string
	Profile string
	Status  string
	Group   IDFilter
}

// NewUserFilter normalizes raw user filter values
func NewUserFilter(search, profile, status, group string) UserFilter {
	return UserFilter{
		Search:  Normalize(search),
		Profile: Normalize(profile),
		Status:  Normalize(status),
		Group:   ParseIDFilter(group),
	}
}

// ConversationFilter filters of GET /api/conversations
type ConversationFilter struct {
	Search  string
	Status  string
	Channel IDFilter
}

// NewConversationFilter normalizes raw conversation filter values
func NewConversationFilter(search, status, channel string) ConversationFilter {
	return ConversationFilter{
		Search:  Normalize(search),
		Status:  Normalize(status),
		Channel: ParseIDFilter(channel),
	}
}

// AnnouncementFilter filters of GET /api/announcements
type AnnouncementFilter struct {
	Search string
	Label  IDFilter
}

// NewAnnouncementFilter normalizes raw announcement filter values
func NewAnnouncementFilter(search, label string) AnnouncementFilter {
	return AnnouncementFilter{
		Search: Normalize(search),
		Label:  ParseIDFilter(label),
	}
}
