package models

import (
	"encoding/json"
	"strings"
)

// Admin is the credential record gating mutating routes. The password
// hash is never serialized in responses.
type Admin struct {
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
	Created      int64  `json:"-" db:"created"`
}

type Skill struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

type Project struct {
	ID          string     `json:"id,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Image       []byte     `json:"image,omitempty"`
	ImageType   string     `json:"imageType,omitempty"`
	ProjectURL  string     `json:"projectUrl,omitempty"`
	GithubURL   string     `json:"githubUrl,omitempty"`
	TechStack   StringList `json:"techStack"`
}

type Experience struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	Description string     `json:"description"`
	Skills      StringList `json:"skills"`
}

// StringList accepts either a JSON array of strings or a single
// comma-separated string. Elements are trimmed and empties dropped.
type StringList []string

func (s *StringList) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		*s = SplitList(raw)
		return nil
	}

	var items []string
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	out := make(StringList, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	*s = out
	return nil
}

// MarshalJSON keeps the wire default an empty array, never null.
func (s StringList) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

// SplitList turns a comma-separated string into trimmed elements.
func SplitList(raw string) StringList {
	parts := strings.Split(raw, ",")
	out := make(StringList, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
