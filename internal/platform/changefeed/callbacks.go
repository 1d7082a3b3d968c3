package changefeed

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const callbackPrefix = "changefeed:"

// RegisterCallbacks publishes an event after every committed create, update
// or delete on a watched table.
func RegisterCallbacks(db *gorm.DB, pub Publisher, log *zap.SugaredLogger) error {
	watched := map[string]Collection{
		string(CollectionAccount): CollectionAccount,
		string(CollectionCourse):  CollectionCourse,
	}

	emit := func(op Operation) func(*gorm.DB) {
		return func(tx *gorm.DB) {
			if tx.Error != nil || tx.Statement == nil {
				return
			}
			c, ok := watched[tx.Statement.Table]
			if !ok {
				return
			}
			if err := pub.Publish(tx.Statement.Context, NewEvent(c, op)); err != nil {
				log.Warnw("change event not published", "collection", c, "operation", op, "error", err)
			}
		}
	}

	cb := db.Callback()
	if err := cb.Create().After("gorm:commit_or_rollback_transaction").
		Register(callbackPrefix+"after_create", emit(OperationInsert)); err != nil {
		return fmt.Errorf("register create callback: %w", err)
	}
	if err := cb.Update().After("gorm:commit_or_rollback_transaction").
		Register(callbackPrefix+"after_update", emit(OperationUpdate)); err != nil {
		return fmt.Errorf("register update callback: %w", err)
	}
	if err := cb.Delete().After("gorm:commit_or_rollback_transaction").
		Register(callbackPrefix+"after_delete", emit(OperationDelete)); err != nil {
		return fmt.Errorf("register delete callback: %w", err)
	}
	return nil
}
