package db

import "gorm.io/gorm"

type Repositories struct {
	Profiles     *ProfileRepository
	Plans        *PlanRepository
	CheckIns     *CheckInRepository
	Achievements *AchievementRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Profiles:     NewProfileRepository(database),
		Plans:        NewPlanRepository(database),
		CheckIns:     NewCheckInRepository(database),
		Achievements: NewAchievementRepository(database),
	}
}
