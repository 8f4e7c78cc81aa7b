package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/mo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DefaultVoteMessage is the vote alert message given to new users.
// {name} is replaced by the user mention when the reminder fires, {command} by the vote command.
const DefaultVoteMessage = "{name} Hey! It's time for {command}!"

// Alert holds the settings of one reminder kind.
type Alert struct {
	Enabled bool   `bson:"enabled"`
	Message string `bson:"message"`
}

// User represents the settings of a Discord user.
type User struct {
	ID                   string `bson:"_id"`
	BotEnabled           bool   `bson:"botEnabled"`
	ReactionsEnabled     bool   `bson:"reactionsEnabled"`
	SlashMentionsEnabled bool   `bson:"slashMentionsEnabled"`
	AlertVote            Alert  `bson:"alertVote"`
}

// NewUser returns the settings of a freshly registered user.
func NewUser(id string) User {
	return User{
		ID:               id,
		BotEnabled:       true,
		ReactionsEnabled: true,
		AlertVote: Alert{
			Enabled: true,
			Message: DefaultVoteMessage,
		},
	}
}

// GetUser gets the settings of the given user.
// The returned option is empty if the user never registered.
func (s *Store) GetUser(ctx context.Context, id string) (mo.Option[User], error) {
	var user User
	if err := s.users.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return mo.None[User](), nil
		}

		return mo.None[User](), fmt.Errorf("find user: %w", err)
	}

	return mo.Some(user), nil
}

// CreateUser creates a new user.
func (s *Store) CreateUser(ctx context.Context, user User) error {
	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if isMongoDBDuplicateError(err) {
			return AlreadyExistsError{Err: fmt.Errorf("user %q", user.ID)}
		}

		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// UpdateUser updates the given user.
func (s *Store) UpdateUser(ctx context.Context, user User) error {
	res, err := s.users.UpdateOne(ctx, bson.D{{Key: "_id", Value: user.ID}}, bson.D{{Key: "$set", Value: user}})
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	if res.MatchedCount == 0 {
		return NotFoundError{Err: errors.New("user not found")}
	}

	return nil
}
