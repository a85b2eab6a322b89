package models_test

import (
	"sync"

	"github.com/bazooka-parts/backend/internal/models"
	"github.com/bazooka-parts/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNotifier collects change notifications for assertions.
type recordingNotifier struct {
	mu     sync.Mutex
	tables []string
}

func (n *recordingNotifier) Notify(table string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.tables = append(n.tables, table)
}

func (n *recordingNotifier) notified() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]string(nil), n.tables...)
}

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	_, err := models.Connect("/does-not-exist/database.db", nil)
	assert.NotNil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestClosedDatabaseGeneralError() {
	part := suite.createTestPart(models.Part{})
	suite.CloseDB()

	err := suite.db.First(&models.Part{}, part.ID).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestChangeNotifications() {
	notifier := &recordingNotifier{}

	db, err := models.Connect(test.TmpFile(suite.T()), notifier)
	require.Nil(suite.T(), err)
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}()

	part := models.Part{Name: "Chain", Category: "Drivetrain", Quantity: 2}
	require.Nil(suite.T(), db.Create(&part).Error)
	assert.Equal(suite.T(), []string{"parts"}, notifier.notified())

	part.Quantity = 3
	require.Nil(suite.T(), db.Save(&part).Error)
	assert.Equal(suite.T(), []string{"parts", "parts"}, notifier.notified())

	require.Nil(suite.T(), db.Delete(&part).Error)
	assert.Equal(suite.T(), []string{"parts", "parts", "parts"}, notifier.notified())
}

func (suite *TestSuiteStandard) TestNoNotificationOnFailedWrite() {
	notifier := &recordingNotifier{}

	db, err := models.Connect(test.TmpFile(suite.T()), notifier)
	require.Nil(suite.T(), err)
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}()

	err = db.Create(&models.Part{Name: "", Category: "Other"}).Error
	require.NotNil(suite.T(), err)
	assert.Empty(suite.T(), notifier.notified(), "a rejected write must not notify")
}
