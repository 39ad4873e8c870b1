package models

import (
	"testing"
)

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		wantErr bool
	}{
		{
			name:    "valid profile",
			profile: Profile{UserID: "u1", Email: "me@example.com"},
			wantErr: false,
		},
		{
			name:    "missing user id",
			profile: Profile{Email: "me@example.com"},
			wantErr: true,
		},
		{
			name:    "blank email",
			profile: Profile{UserID: "u1", Email: "   "},
			wantErr: true,
		},
		{
			name:    "email without at sign",
			profile: Profile{UserID: "u1", Email: "not-an-email"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHabitValidate(t *testing.T) {
	valid := Habit{Name: "Meditate", Frequency: FrequencyDaily}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() on valid habit = %v", err)
	}

	if err := (Habit{Name: "", Frequency: FrequencyDaily}).Validate(); err == nil {
		t.Error("Validate() should reject empty name")
	}
	if err := (Habit{Name: "x", Frequency: "hourly"}).Validate(); err == nil {
		t.Error("Validate() should reject unknown frequency")
	}
}

func TestSkillRatingValidate(t *testing.T) {
	tests := []struct {
		name    string
		rating  SkillRating
		wantErr bool
	}{
		{
			name:    "valid rating",
			rating:  SkillRating{SkillID: "s1", Rating: 7},
			wantErr: false,
		},
		{
			name:    "rating below range",
			rating:  SkillRating{SkillID: "s1", Rating: 0},
			wantErr: true,
		},
		{
			name:    "rating above range",
			rating:  SkillRating{SkillID: "s1", Rating: 11},
			wantErr: true,
		},
		{
			name:    "missing skill reference",
			rating:  SkillRating{Rating: 5},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rating.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
