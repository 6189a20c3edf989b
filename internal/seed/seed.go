package seed

import (
	"fmt"
	"log"
	"time"

	"furreal/internal/calendar"
	"furreal/internal/models"

	"gorm.io/gorm"
)

// Options controls how much data the seeder generates.
type Options struct {
	// NumUsers is the number of accounts to create.
	NumUsers int
	// Days is how many trailing days of reals to back-fill. The memory
	// calendar shows two weeks, so that is the useful minimum.
	Days int
}

// DefaultOptions fills the whole memory window for a small social graph.
func DefaultOptions() Options {
	return Options{NumUsers: 20, Days: calendar.MemoryWindowDays}
}

// Seeder populates the database with a believable social graph: users,
// friendships in every state, and a back-dated history of daily reals with
// comments and likes from friends.
type Seeder struct {
	db *gorm.DB
	f  *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, f: NewFactory(db)}
}

// ClearAll removes all seeded data, children before parents.
func (s *Seeder) ClearAll() error {
	for _, model := range []interface{}{
		&models.Reaction{},
		&models.Comment{},
		&models.Real{},
		&models.Friendship{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("seed: clear: %w", err)
		}
	}
	// Users soft-delete; purge them for a genuinely clean slate.
	if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&models.User{}).Error; err != nil {
		return fmt.Errorf("seed: clear users: %w", err)
	}
	return nil
}

// Run generates the data set described by opts.
func (s *Seeder) Run(opts Options) error {
	if opts.NumUsers < 2 {
		return fmt.Errorf("seed: need at least 2 users, got %d", opts.NumUsers)
	}
	if opts.Days < 1 {
		opts.Days = calendar.MemoryWindowDays
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := s.f.CreateUser(i)
		if err != nil {
			return err
		}
		users = append(users, user)
	}
	log.Printf("seeded %d users (password %q)", len(users), SharedPassword)

	if err := s.seedFriendships(users); err != nil {
		return err
	}
	if err := s.seedReals(users, opts.Days); err != nil {
		return err
	}
	return nil
}

// seedFriendships links each user to a handful of neighbors. Most links are
// accepted; the last one stays pending so the requests inbox has content.
func (s *Seeder) seedFriendships(users []*models.User) error {
	accepted, pending := 0, 0
	for i, user := range users {
		links := 3
		if links > len(users)-1 {
			links = len(users) - 1
		}
		for j := 1; j <= links; j++ {
			other := users[(i+j)%len(users)]
			if user.ID >= other.ID {
				continue // each pair once, lower ID requests
			}
			status := models.FriendshipStatusAccepted
			if j == links {
				status = models.FriendshipStatusPending
			}
			if err := s.f.CreateFriendship(user, other, status); err != nil {
				return err
			}
			if status == models.FriendshipStatusAccepted {
				accepted++
			} else {
				pending++
			}
		}
	}
	log.Printf("seeded %d accepted and %d pending friendships", accepted, pending)
	return nil
}

// seedReals back-fills daily posts across the trailing window and decorates
// today's posts with comments and likes from the poster's friends.
func (s *Seeder) seedReals(users []*models.User, days int) error {
	now := time.Now()
	total := 0

	todays := make(map[uint]*models.Real)
	for _, user := range users {
		for d := 0; d < days; d++ {
			// roughly two posting days out of three
			if s.f.rng.Intn(3) == 0 {
				continue
			}
			day := now.AddDate(0, 0, -d)
			start, end := calendar.DayWindow(day)
			span := end.Sub(start)
			at := start.Add(time.Duration(s.f.rng.Int63n(int64(span))))
			if at.After(now) {
				at = now.Add(-time.Minute)
			}
			real, err := s.f.CreateReal(user, at)
			if err != nil {
				return err
			}
			total++
			if d == 0 {
				todays[user.ID] = real
			}
		}
	}
	log.Printf("seeded %d reals across %d days", total, days)

	friendIDs, err := s.acceptedEdges()
	if err != nil {
		return err
	}
	usersByID := make(map[uint]*models.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	comments, likes := 0, 0
	for ownerID, real := range todays {
		for _, friendID := range friendIDs[ownerID] {
			friend := usersByID[friendID]
			if friend == nil {
				continue
			}
			if s.f.rng.Intn(2) == 0 {
				if err := s.f.CreateReaction(real, friend); err != nil {
					return err
				}
				likes++
			}
			if s.f.rng.Intn(3) == 0 {
				at := real.CreatedAt.Add(time.Duration(1+s.f.rng.Intn(30)) * time.Minute)
				if err := s.f.CreateComment(real, friend, at); err != nil {
					return err
				}
				comments++
			}
		}
	}
	log.Printf("seeded %d likes and %d comments on today's reals", likes, comments)
	return nil
}

// acceptedEdges maps each user ID to their accepted friends' IDs.
func (s *Seeder) acceptedEdges() (map[uint][]uint, error) {
	var friendships []models.Friendship
	if err := s.db.Where("status = ?", models.FriendshipStatusAccepted).Find(&friendships).Error; err != nil {
		return nil, fmt.Errorf("seed: load friendships: %w", err)
	}
	edges := make(map[uint][]uint)
	for _, f := range friendships {
		edges[f.RequesterID] = append(edges[f.RequesterID], f.AddresseeID)
		edges[f.AddresseeID] = append(edges[f.AddresseeID], f.RequesterID)
	}
	return edges, nil
}
