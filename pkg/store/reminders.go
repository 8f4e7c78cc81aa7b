package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/mo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ActivityVote is the activity of vote reminders.
const ActivityVote = "vote"

// Reminder represents a scheduled notification of a user for an activity.
type Reminder struct {
	ID        primitive.ObjectID `bson:"_id"`
	UserID    string             `bson:"userId"`
	Activity  string             `bson:"activity"`
	EndTime   time.Time          `bson:"endTime"`
	ChannelID string             `bson:"channelId"`
	Message   string             `bson:"message"`
	Triggered bool               `bson:"triggered"`
}

// GetUserReminder gets the reminder of the given user for the given activity.
// The returned option is empty if there is none.
func (s *Store) GetUserReminder(ctx context.Context, userID, activity string) (mo.Option[Reminder], error) {
	filter := bson.D{
		{Key: "userId", Value: userID},
		{Key: "activity", Value: activity},
	}

	var reminder Reminder
	if err := s.reminders.FindOne(ctx, filter).Decode(&reminder); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return mo.None[Reminder](), nil
		}

		return mo.None[Reminder](), fmt.Errorf("find reminder: %w", err)
	}

	return mo.Some(reminder), nil
}

// UpsertUserReminder schedules the reminder of the given user for the given activity in timeLeft.
// An existing reminder for the same user and activity is replaced.
func (s *Store) UpsertUserReminder(ctx context.Context, userID, activity string, timeLeft time.Duration, channelID, message string) (Reminder, error) {
	filter := bson.D{
		{Key: "userId", Value: userID},
		{Key: "activity", Value: activity},
	}

	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "endTime", Value: time.Now().Add(timeLeft).UTC().Truncate(time.Millisecond)},
			{Key: "channelId", Value: channelID},
			{Key: "message", Value: message},
			{Key: "triggered", Value: false},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
		}},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var reminder Reminder
	if err := s.reminders.FindOneAndUpdate(ctx, filter, update, opts).Decode(&reminder); err != nil {
		return Reminder{}, fmt.Errorf("upsert reminder: %w", err)
	}

	return reminder, nil
}

// ListReminders lists all the reminders not triggered yet.
func (s *Store) ListReminders(ctx context.Context) ([]Reminder, error) {
	res, err := s.reminders.Find(ctx, bson.D{{Key: "triggered", Value: false}})
	if err != nil {
		return nil, fmt.Errorf("find reminders: %w", err)
	}

	var reminders []Reminder
	if err = res.All(ctx, &reminders); err != nil {
		return nil, fmt.Errorf("decode reminders: %w", err)
	}

	return reminders, nil
}

// DeleteReminder removes the reminder with the given id.
func (s *Store) DeleteReminder(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.reminders.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}

	if res.DeletedCount == 0 {
		return NotFoundError{Err: errors.New("reminder not found")}
	}

	return nil
}
