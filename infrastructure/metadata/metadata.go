package metadata

import (
	"context"
	"errors"
	"time"

	"github.com/prasetyowira/qrbooth/constant"
	appLogger "github.com/prasetyowira/qrbooth/infrastructure/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// ErrNotFound is returned when a picture has no recorded metadata.
var ErrNotFound = errors.New(constant.ErrMetadataNotFound)

// Store persists per-picture metadata entries, keyed by the picture's absolute path.
type Store struct {
	db *gorm.DB
}

// EntryModel is the GORM model for a metadata entry
type EntryModel struct {
	ID          uint   `gorm:"primaryKey"`
	PicturePath string `gorm:"uniqueIndex:idx_picture_key;not null"`
	Key         string `gorm:"uniqueIndex:idx_picture_key;not null"`
	Value       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName maps the model to the metadata_entries table
func (EntryModel) TableName() string {
	return "metadata_entries"
}

// GormLogger implements GORM's logger.Interface
type GormLogger struct{}

// LogMode implements the log.Interface method
func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	return l
}

// Info logs info messages
func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	appLogger.CtxInfo(ctx, msg, appLogger.LoggerInfo{
		ContextFunction: constant.CtxMetadata,
		Data: map[string]interface{}{
			constant.DataValue: data,
		},
	})
}

// Warn logs warn messages
func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	appLogger.CtxWarn(ctx, msg, appLogger.LoggerInfo{
		ContextFunction: constant.CtxMetadata,
		Data: map[string]interface{}{
			constant.DataValue: data,
		},
	})
}

// Error logs error messages
func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	appLogger.CtxError(ctx, msg, appLogger.LoggerInfo{
		ContextFunction: constant.CtxMetadata,
		Error: &appLogger.CustomError{
			Code:    constant.ErrCodeMetaGeneral,
			Message: msg,
			Type:    constant.ErrTypeDB,
		},
		Data: map[string]interface{}{
			constant.DataValue: data,
		},
	})
}

// Trace logs SQL operations
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		appLogger.CtxError(ctx, "SQL error", appLogger.LoggerInfo{
			ContextFunction: constant.CtxMetadata,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeMetaGeneral,
				Message: err.Error(),
				Type:    constant.ErrTypeDB,
			},
			Data: map[string]interface{}{
				"elapsed": elapsed.String(),
				"rows":    rows,
				"sql":     sql,
			},
		})
		return
	}

	appLogger.CtxDebug(ctx, "SQL query", appLogger.LoggerInfo{
		ContextFunction: constant.CtxMetadata,
		Data: map[string]interface{}{
			"elapsed": elapsed.String(),
			"rows":    rows,
			"sql":     sql,
		},
	})
}

// NewStore opens (or creates) the metadata database at dbPath
func NewStore(dbPath string) (*Store, error) {
	ctx := appLogger.NewRequestContext()

	appLogger.CtxDebug(ctx, "Opening metadata database", appLogger.LoggerInfo{
		ContextFunction: constant.CtxMetadata,
		Data: map[string]interface{}{
			constant.DataPath: dbPath,
		},
	})

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: &GormLogger{},
	})
	if err != nil {
		appLogger.CtxError(ctx, "Failed to open metadata database", appLogger.LoggerInfo{
			ContextFunction: constant.CtxMetadata,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeMetaOpen,
				Message: err.Error(),
				Type:    constant.ErrTypeDB,
			},
			Data: map[string]interface{}{
				constant.DataPath: dbPath,
			},
		})
		return nil, err
	}

	if err := db.AutoMigrate(&EntryModel{}); err != nil {
		appLogger.CtxError(ctx, "Failed to migrate metadata schema", appLogger.LoggerInfo{
			ContextFunction: constant.CtxMetadata,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeMetaMigrate,
				Message: err.Error(),
				Type:    constant.ErrTypeDB,
			},
		})
		return nil, err
	}

	return &Store{db: db}, nil
}

// Attach records (or overwrites) a metadata value under the picture's path
func (s *Store) Attach(picturePath, key, value string) error {
	ctx := appLogger.NewRequestContext()

	appLogger.CtxDebug(ctx, "Attaching picture metadata", appLogger.LoggerInfo{
		ContextFunction: constant.CtxAttach,
		Data: map[string]interface{}{
			constant.DataPicture: picturePath,
			constant.DataKey:     key,
			constant.DataValue:   value,
		},
	})

	if picturePath == "" {
		return errors.New(constant.ErrEmptyPicturePath)
	}

	entry := EntryModel{PicturePath: picturePath, Key: key}
	result := s.db.
		Where(&EntryModel{PicturePath: picturePath, Key: key}).
		Assign(EntryModel{Value: value}).
		FirstOrCreate(&entry)
	if result.Error != nil {
		appLogger.CtxError(ctx, "Failed to attach metadata", appLogger.LoggerInfo{
			ContextFunction: constant.CtxAttach,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeMetaAttach,
				Message: result.Error.Error(),
				Type:    constant.ErrTypeDB,
			},
			Data: map[string]interface{}{
				constant.DataPicture: picturePath,
				constant.DataKey:     key,
			},
		})
		return result.Error
	}

	return nil
}

// Lookup returns all metadata recorded for a picture path
func (s *Store) Lookup(picturePath string) (map[string]string, error) {
	ctx := appLogger.NewRequestContext()

	var entries []EntryModel
	if err := s.db.Where("picture_path = ?", picturePath).Find(&entries).Error; err != nil {
		appLogger.CtxError(ctx, "Failed to look up metadata", appLogger.LoggerInfo{
			ContextFunction: constant.CtxLookup,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeMetaLookup,
				Message: err.Error(),
				Type:    constant.ErrTypeDB,
			},
			Data: map[string]interface{}{
				constant.DataPicture: picturePath,
			},
		})
		return nil, err
	}

	if len(entries) == 0 {
		return nil, ErrNotFound
	}

	values := make(map[string]string, len(entries))
	for _, e := range entries {
		values[e.Key] = e.Value
	}
	return values, nil
}

// Close releases the underlying database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		appLogger.Error("Failed to get database handle", appLogger.LoggerInfo{
			ContextFunction: constant.CtxClose,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeMetaClose,
				Message: err.Error(),
				Type:    constant.ErrTypeDB,
			},
		})
		return err
	}
	return sqlDB.Close()
}
