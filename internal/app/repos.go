package app

import (
	"gorm.io/gorm"

	"github.com/xjtang/lifelog-backend/internal/logger"
	"github.com/xjtang/lifelog-backend/internal/repos"
)

type Repos struct {
	Matter       repos.MatterRepo
	MatterRecord repos.MatterRecordRepo
	Setting      repos.SettingRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Matter:       repos.NewMatterRepo(db, log),
		MatterRecord: repos.NewMatterRecordRepo(db, log),
		Setting:      repos.NewSettingRepo(db, log),
	}
}
