package renderer

import (
	"github.com/litekite/litekite"
)

// profileView is the Profile prepared for the template.
type profileView struct {
	Username    string
	Nationality string
	Cash        string
	IndianCash  string
}

// ProfileMarkdown renders the account profile with both market balances.
func ProfileMarkdown(p litekite.Profile) string {
	view := profileView{
		Username:    p.Username,
		Nationality: p.Nationality,
		Cash:        litekite.USD(p.Cash).String(),
		IndianCash:  litekite.INR(p.IndianCash).String(),
	}
	if view.Nationality == "" {
		view.Nationality = "not set"
	}
	return renderTemplate("profile", "profile.md", nil, view)
}
