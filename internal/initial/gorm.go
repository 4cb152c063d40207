package initial

import (
	"fmt"
	"log"
	"os"
	"time"

	"NeuroLink/internal/config"
	appointmentEntity "NeuroLink/internal/modules/appointment/domain/entity"
	chatEntity "NeuroLink/internal/modules/chat/domain/entity"
	noteEntity "NeuroLink/internal/modules/note/domain/entity"
	notificationEntity "NeuroLink/internal/modules/notification/domain/entity"
	"NeuroLink/pkg/zlog"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var GormDB *gorm.DB

func init() {
	conf := config.GetConfig()
	user := conf.MysqlConfig.User
	password := conf.MysqlConfig.Password
	host := conf.MysqlConfig.Host
	port := conf.MysqlConfig.Port
	dbName := conf.MysqlConfig.DatabaseName
	if dbName == "" {
		dbName = conf.AppName
	}
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local", user, password, host, port, dbName)

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	var err error
	GormDB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		zlog.Fatal(err.Error())
	}

	err = GormDB.AutoMigrate(
		&appointmentEntity.Appointment{},
		&chatEntity.Message{},
		&chatEntity.EmotionAnalysis{},
		&notificationEntity.Notification{},
		&noteEntity.SessionNote{},
	)
	if err != nil {
		zlog.Fatal(err.Error())
	}
}
