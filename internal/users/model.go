package users

import (
	"fmt"
	"time"
)

type Settings struct {
	EmailNotifications bool   `json:"emailNotifications"`
	PushNotifications  bool   `json:"pushNotifications"`
	WeeklyReports      bool   `json:"weeklyReports"`
	DarkMode           bool   `json:"darkMode"`
	Language           string `json:"language"`
	UnitSystem         string `json:"unitSystem"`
	PrivacyMode        string `json:"privacyMode"`
}

type Stats struct {
	TotalRecipes   int `json:"totalRecipes"`
	TotalWorkouts  int `json:"totalWorkouts"`
	DaysTracked    int `json:"daysTracked"`
	GoalsMet       int `json:"goalsMet"`
	StreakDays     int `json:"streakDays"`
	CaloriesBurned int `json:"caloriesBurned"`
	NutritionScore int `json:"nutritionScore"`
}

// User is the account record. It never carries credentials.
type User struct {
	ID               string    `json:"id"`
	ClerkID          string    `json:"clerkId,omitempty"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Username         string    `json:"username,omitempty"`
	ProfileImage     string    `json:"profileImage"`
	Bio              string    `json:"bio"`
	Location         string    `json:"location"`
	Theme            string    `json:"theme"`
	Settings         Settings  `json:"settings"`
	Stats            Stats     `json:"stats"`
	Achievements     []int     `json:"achievements"`
	Goals            []string  `json:"goals"`
	SubscriptionTier string    `json:"subscriptionTier"`
	LastLogin        time.Time `json:"lastLogin"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// SyncInput is the identity pushed by the front end after sign-in.
type SyncInput struct {
	ClerkID      string `json:"clerkId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	ProfileImage string `json:"profileImage"`
}

const maxNameLength = 60

func DefaultSettings() Settings {
	return Settings{
		EmailNotifications: true,
		PushNotifications:  true,
		WeeklyReports:      true,
		DarkMode:           true,
		Language:           "english",
		UnitSystem:         "metric",
		PrivacyMode:        "friends",
	}
}

func DefaultStats() Stats {
	return Stats{DaysTracked: 1, StreakDays: 1, NutritionScore: 50}
}

func welcomeBio(name string) string {
	return fmt.Sprintf("Hello, I'm %s. Just started my nutrition and fitness journey with AnnaData!", name)
}

// newUser fills the defaults a freshly synced account starts with.
func newUser(id string, in SyncInput, now time.Time) User {
	return User{
		ID:               id,
		ClerkID:          in.ClerkID,
		Name:             in.Name,
		Email:            in.Email,
		Username:         in.Username,
		ProfileImage:     in.ProfileImage,
		Bio:              welcomeBio(in.Name),
		Theme:            "primary",
		Settings:         DefaultSettings(),
		Stats:            DefaultStats(),
		Achievements:     []int{},
		Goals:            []string{},
		SubscriptionTier: "free",
		LastLogin:        now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
