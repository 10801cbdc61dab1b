package services

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Neo4jNotifier records each notification as a node linked to its user.
type Neo4jNotifier struct {
	driver neo4j.DriverWithContext
}

var _ NotificationService = (*Neo4jNotifier)(nil)

// NewNeo4jNotifier creates a notifier backed by the given driver.
func NewNeo4jNotifier(driver neo4j.DriverWithContext) *Neo4jNotifier {
	return &Neo4jNotifier{driver: driver}
}

// NotifyUserTaskCompleted creates a Notification node for the task.
func (n *Neo4jNotifier) NotifyUserTaskCompleted(ctx context.Context, taskID, userID int) error {
	session := n.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	event := newEvent(taskID, userID)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		_, err := tx.Run(ctx,
			"MERGE (u:User {id: $userID}) "+
				"CREATE (n:Notification {id: $id, type: $type, task_id: $taskID, sent_at: $sentAt}) "+
				"CREATE (u)-[:NOTIFIED]->(n)",
			map[string]any{
				"userID": int64(event.UserID),
				"id":     event.ID,
				"type":   event.Type,
				"taskID": int64(event.TaskID),
				"sentAt": event.SentAt,
			},
		)
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("neo4j notify task %d: %w", taskID, err)
	}

	return nil
}

// CountNotifications returns how many notifications a user has received.
func (n *Neo4jNotifier) CountNotifications(ctx context.Context, userID int) (int64, error) {
	session := n.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx,
			"MATCH (:User {id: $userID})-[:NOTIFIED]->(n:Notification) RETURN count(n) AS total",
			map[string]any{"userID": int64(userID)},
		)
		if err != nil {
			return nil, err
		}

		record, err := res.Single(ctx)
		if err != nil {
			return nil, err
		}

		total, _ := record.Get("total")
		return total, nil
	})
	if err != nil {
		return 0, err
	}

	total, ok := result.(int64)
	if !ok {
		return 0, fmt.Errorf("unexpected count type %T", result)
	}
	return total, nil
}
