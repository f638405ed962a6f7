package models

// SiteConfigurationID is the fixed primary key of the singleton row.
// The table holds exactly one row for the lifetime of the system; the
// constant key plus the primary-key constraint is what enforces that.
const SiteConfigurationID = 1

// SiteConfiguration is the singleton record holding the site owner's
// identity, contact details and social links.
type SiteConfiguration struct {
	ID              int    `json:"id" db:"id" gorm:"primaryKey;not null"`
	SiteName        string `json:"site_name" db:"site_name" gorm:"type:text;not null"`
	Tagline         string `json:"tagline" db:"tagline" gorm:"type:text"`
	Bio             string `json:"bio" db:"bio" gorm:"type:text"`
	ProfileImage    string `json:"profile_image,omitempty" db:"profile_image" gorm:"type:text"`
	Resume          string `json:"resume,omitempty" db:"resume" gorm:"type:text"`
	GithubURL       string `json:"github_url" db:"github_url" gorm:"type:text"`
	LinkedinURL     string `json:"linkedin_url" db:"linkedin_url" gorm:"type:text"`
	TwitterURL      string `json:"twitter_url" db:"twitter_url" gorm:"type:text"`
	Email           string `json:"email" db:"email" gorm:"type:text;not null"`
	Phone           string `json:"phone" db:"phone" gorm:"type:text"`
	Location        string `json:"location" db:"location" gorm:"type:text"`
	YearsExperience int    `json:"years_experience" db:"years_experience" gorm:"type:integer;not null"`
}

// DefaultSiteConfiguration returns the row inserted on first access.
func DefaultSiteConfiguration() *SiteConfiguration {
	return &SiteConfiguration{
		ID:       SiteConfigurationID,
		SiteName: "Bikal Sharma Pokharel",
		Tagline:  "Aspiring Data Scientist | AI/ML Enthusiast | Backend Developer",
		Bio: "BSc Computer Science Student passionate about solving real-world problems " +
			"through technology. Experienced in full-stack development, machine learning, " +
			"and digital marketing.",
		Email:           "pokharelbikalsharma@gmail.com",
		Location:        "Nepal",
		YearsExperience: 2,
	}
}
