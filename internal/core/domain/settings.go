package domain

import "time"

// CompanySettings is the singleton document backing the public site chrome
// and contact details. There is exactly one record.
type CompanySettings struct {
	ID              string            `json:"id" bson:"_id,omitempty"`
	Name            string            `json:"name" bson:"name"`
	LogoURL         string            `json:"logo_url,omitempty" bson:"logo_url,omitempty"`
	ContactEmail    string            `json:"contact_email,omitempty" bson:"contact_email,omitempty"`
	ContactPhone    string            `json:"contact_phone,omitempty" bson:"contact_phone,omitempty"`
	Address         string            `json:"address,omitempty" bson:"address,omitempty"`
	SocialMedia     map[string]string `json:"social_media,omitempty" bson:"social_media,omitempty"`
	HomepageContent string            `json:"homepage_content,omitempty" bson:"homepage_content,omitempty"`
	AboutContent    string            `json:"about_content,omitempty" bson:"about_content,omitempty"`
	UpdatedAt       time.Time         `json:"updated_at" bson:"updated_at"`
}
