package repository

import (
	"errors"
	"path/filepath"
	"strconv"
	"testing"

	"langportal/internal/database"
	"langportal/internal/validation"
)

// newTestDB creates a migrated SQLite database in a temp directory
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Initialize(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func defaultPage(t *testing.T) validation.Page {
	t.Helper()
	page, err := validation.ParsePage("", "")
	if err != nil {
		t.Fatalf("ParsePage failed: %v", err)
	}
	return page
}

func defaultSort(t *testing.T) validation.Sort {
	t.Helper()
	sort, err := validation.ParseSort("", "", validation.WordSortColumns, "romaji")
	if err != nil {
		t.Fatalf("ParseSort failed: %v", err)
	}
	return sort
}

// seedWord inserts a word and links it to the given groups
func seedWord(t *testing.T, db *database.DB, kanji, romaji, english string, groupIDs ...int64) int64 {
	t.Helper()

	wordRepo := NewWordRepository(db)
	id, err := wordRepo.Create(kanji, romaji, english, nil)
	if err != nil {
		t.Fatalf("Failed to create word %q: %v", romaji, err)
	}
	for _, groupID := range groupIDs {
		if err := wordRepo.AddToGroup(id, groupID); err != nil {
			t.Fatalf("Failed to link word %q: %v", romaji, err)
		}
	}
	return id
}

func seedGroup(t *testing.T, db *database.DB, name string) int64 {
	t.Helper()

	group, err := NewGroupRepository(db).Create(name)
	if err != nil {
		t.Fatalf("Failed to create group %q: %v", name, err)
	}
	return group.ID
}

func seedActivity(t *testing.T, db *database.DB, name string) int64 {
	t.Helper()

	activity, err := NewActivityRepository(db).Create(name, "test activity", nil, "http://localhost/test")
	if err != nil {
		t.Fatalf("Failed to create activity %q: %v", name, err)
	}
	return activity.ID
}

func TestWordRepository(t *testing.T) {
	db := newTestDB(t)
	wordRepo := NewWordRepository(db)

	groupID := seedGroup(t, db, "Basic Greetings")
	wordID := seedWord(t, db, "こんにちは", "konnichiwa", "hello", groupID)
	seedWord(t, db, "さようなら", "sayounara", "goodbye", groupID)
	seedWord(t, db, "おはよう", "ohayou", "good morning", groupID)

	t.Run("List default sort", func(t *testing.T) {
		words, total, err := wordRepo.List(defaultPage(t), defaultSort(t))
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if total != 3 {
			t.Errorf("total = %d, want 3", total)
		}
		if len(words) != 3 {
			t.Fatalf("len(words) = %d, want 3", len(words))
		}
		// romaji ascending: konnichiwa, ohayou, sayounara
		if words[0].Romaji != "konnichiwa" || words[2].Romaji != "sayounara" {
			t.Errorf("unexpected order: %s, %s, %s", words[0].Romaji, words[1].Romaji, words[2].Romaji)
		}
	})

	t.Run("List sorted by english descending", func(t *testing.T) {
		sort, err := validation.ParseSort("english", "desc", validation.WordSortColumns, "romaji")
		if err != nil {
			t.Fatalf("ParseSort failed: %v", err)
		}
		words, _, err := wordRepo.List(defaultPage(t), sort)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if words[0].English != "hello" {
			t.Errorf("first word = %q, want %q", words[0].English, "hello")
		}
	})

	t.Run("Pagination beyond last page is empty not an error", func(t *testing.T) {
		page, err := validation.ParsePage("10", "10")
		if err != nil {
			t.Fatalf("ParsePage failed: %v", err)
		}
		words, total, err := wordRepo.List(page, defaultSort(t))
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(words) != 0 {
			t.Errorf("len(words) = %d, want 0", len(words))
		}
		if total != 3 {
			t.Errorf("total = %d, want 3", total)
		}
	})

	t.Run("Get returns word with groups", func(t *testing.T) {
		word, err := wordRepo.Get(wordID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if word.Romaji != "konnichiwa" {
			t.Errorf("Romaji = %q, want konnichiwa", word.Romaji)
		}
		if len(word.Groups) != 1 || word.Groups[0].Name != "Basic Greetings" {
			t.Errorf("Groups = %+v, want one group Basic Greetings", word.Groups)
		}
		if word.TimesReviewed != 0 || word.TimesCorrect != 0 {
			t.Errorf("fresh word has stats %d/%d, want 0/0", word.TimesReviewed, word.TimesCorrect)
		}
	})

	t.Run("Get missing word returns ErrNotFound", func(t *testing.T) {
		_, err := wordRepo.Get(9999)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Get(9999) error = %v, want ErrNotFound", err)
		}
	})

	t.Run("Create defaults empty parts to an empty array", func(t *testing.T) {
		id, err := wordRepo.Create("十", "juu", "ten", nil)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		word, err := wordRepo.Get(id)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(word.Parts) != "[]" {
			t.Errorf("Parts = %q, want []", word.Parts)
		}
	})
}

// TestReviewAggregates covers the distinct-session counting rule: two
// reviews of the same word in one session count as one session reviewed,
// while correct counts follow individual rows.
func TestReviewAggregates(t *testing.T) {
	db := newTestDB(t)
	wordRepo := NewWordRepository(db)
	sessionRepo := NewSessionRepository(db)

	groupID := seedGroup(t, db, "Basic Greetings")
	activityID := seedActivity(t, db, "Flashcards")
	wordID := seedWord(t, db, "こんにちは", "konnichiwa", "hello", groupID)

	session, err := sessionRepo.Create(groupID, activityID)
	if err != nil {
		t.Fatalf("Create session failed: %v", err)
	}

	if _, err := sessionRepo.RecordReview(session.ID, wordID, true); err != nil {
		t.Fatalf("RecordReview failed: %v", err)
	}
	if _, err := sessionRepo.RecordReview(session.ID, wordID, false); err != nil {
		t.Fatalf("RecordReview failed: %v", err)
	}

	word, err := wordRepo.Get(wordID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if word.TimesReviewed != 1 {
		t.Errorf("TimesReviewed = %d, want 1 (distinct sessions)", word.TimesReviewed)
	}
	if word.TimesCorrect != 1 {
		t.Errorf("TimesCorrect = %d, want 1", word.TimesCorrect)
	}

	// A second session makes it two distinct sessions
	session2, err := sessionRepo.Create(groupID, activityID)
	if err != nil {
		t.Fatalf("Create second session failed: %v", err)
	}
	if _, err := sessionRepo.RecordReview(session2.ID, wordID, true); err != nil {
		t.Fatalf("RecordReview failed: %v", err)
	}

	word, err = wordRepo.Get(wordID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if word.TimesReviewed != 2 {
		t.Errorf("TimesReviewed = %d, want 2", word.TimesReviewed)
	}
	if word.TimesCorrect != 2 {
		t.Errorf("TimesCorrect = %d, want 2", word.TimesCorrect)
	}
}

func TestGroupRepository(t *testing.T) {
	db := newTestDB(t)
	groupRepo := NewGroupRepository(db)

	greetings := seedGroup(t, db, "Basic Greetings")
	numbers := seedGroup(t, db, "Numbers 1-10")
	seedWord(t, db, "こんにちは", "konnichiwa", "hello", greetings)
	seedWord(t, db, "一", "ichi", "one", numbers)
	seedWord(t, db, "二", "ni", "two", numbers)

	t.Run("List with word counts ordered by name", func(t *testing.T) {
		groups, total, err := groupRepo.List(defaultPage(t))
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if total != 2 {
			t.Errorf("total = %d, want 2", total)
		}
		if groups[0].Name != "Basic Greetings" || groups[0].WordCount != 1 {
			t.Errorf("groups[0] = %+v, want Basic Greetings with 1 word", groups[0])
		}
		if groups[1].Name != "Numbers 1-10" || groups[1].WordCount != 2 {
			t.Errorf("groups[1] = %+v, want Numbers 1-10 with 2 words", groups[1])
		}
	})

	t.Run("Get missing group returns ErrNotFound", func(t *testing.T) {
		_, err := groupRepo.Get(9999)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Get(9999) error = %v, want ErrNotFound", err)
		}
	})

	t.Run("ListWords scoped to group", func(t *testing.T) {
		words, total, err := groupRepo.ListWords(numbers, defaultPage(t), defaultSort(t))
		if err != nil {
			t.Fatalf("ListWords failed: %v", err)
		}
		if total != 2 {
			t.Errorf("total = %d, want 2", total)
		}
		for _, w := range words {
			if w.Romaji != "ichi" && w.Romaji != "ni" {
				t.Errorf("unexpected word %q in group", w.Romaji)
			}
		}
	})

	t.Run("GetByName resolves lowest id on duplicates", func(t *testing.T) {
		dup1, err := groupRepo.Create("Duplicated")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if _, err := groupRepo.Create("Duplicated"); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		got, err := groupRepo.GetByName("Duplicated")
		if err != nil {
			t.Fatalf("GetByName failed: %v", err)
		}
		if got.ID != dup1.ID {
			t.Errorf("GetByName id = %d, want %d", got.ID, dup1.ID)
		}
	})
}

// TestGroupWordsDuplicateLink verifies that a word linked to the same group
// twice does not inflate its review aggregates in the group word listing.
func TestGroupWordsDuplicateLink(t *testing.T) {
	db := newTestDB(t)
	wordRepo := NewWordRepository(db)
	groupRepo := NewGroupRepository(db)
	sessionRepo := NewSessionRepository(db)

	groupID := seedGroup(t, db, "Basic Greetings")
	activityID := seedActivity(t, db, "Flashcards")
	wordID := seedWord(t, db, "こんにちは", "konnichiwa", "hello", groupID)

	// Duplicate link: the schema has no unique pair constraint
	if err := wordRepo.AddToGroup(wordID, groupID); err != nil {
		t.Fatalf("AddToGroup failed: %v", err)
	}

	session, err := sessionRepo.Create(groupID, activityID)
	if err != nil {
		t.Fatalf("Create session failed: %v", err)
	}
	if _, err := sessionRepo.RecordReview(session.ID, wordID, true); err != nil {
		t.Fatalf("RecordReview failed: %v", err)
	}

	words, total, err := groupRepo.ListWords(groupID, defaultPage(t), defaultSort(t))
	if err != nil {
		t.Fatalf("ListWords failed: %v", err)
	}
	if total != 1 {
		t.Errorf("total = %d, want 1 distinct word", total)
	}
	if len(words) != 1 {
		t.Fatalf("len(words) = %d, want 1", len(words))
	}
	if words[0].TimesCorrect != 1 {
		t.Errorf("TimesCorrect = %d, want 1 (duplicate link must not inflate)", words[0].TimesCorrect)
	}
}

// TestPaginationDisjointPages verifies that paging over rows sharing the
// same sort value never repeats or drops a row. Equal sort keys leave the
// order up to the engine unless the query breaks ties on id.
func TestPaginationDisjointPages(t *testing.T) {
	db := newTestDB(t)
	wordRepo := NewWordRepository(db)
	groupRepo := NewGroupRepository(db)

	groupID := seedGroup(t, db, "Homophones")
	const wordTotal = 25
	for i := 0; i < wordTotal; i++ {
		seedWord(t, db, "同じ", "onaji", "same", groupID)
	}

	pageOf := func(t *testing.T, n int) validation.Page {
		t.Helper()
		page, err := validation.ParsePage(strconv.Itoa(n), "10")
		if err != nil {
			t.Fatalf("ParsePage failed: %v", err)
		}
		return page
	}

	t.Run("words list", func(t *testing.T) {
		seen := make(map[int64]bool)
		for n := 1; n <= 3; n++ {
			words, total, err := wordRepo.List(pageOf(t, n), defaultSort(t))
			if err != nil {
				t.Fatalf("List page %d failed: %v", n, err)
			}
			if total != wordTotal {
				t.Errorf("page %d total = %d, want %d", n, total, wordTotal)
			}
			for _, w := range words {
				if seen[w.ID] {
					t.Errorf("word %d returned on more than one page", w.ID)
				}
				seen[w.ID] = true
			}
		}
		if len(seen) != wordTotal {
			t.Errorf("pages covered %d words, want %d", len(seen), wordTotal)
		}
	})

	t.Run("group words list", func(t *testing.T) {
		seen := make(map[int64]bool)
		for n := 1; n <= 3; n++ {
			words, total, err := groupRepo.ListWords(groupID, pageOf(t, n), defaultSort(t))
			if err != nil {
				t.Fatalf("ListWords page %d failed: %v", n, err)
			}
			if total != wordTotal {
				t.Errorf("page %d total = %d, want %d", n, total, wordTotal)
			}
			for _, w := range words {
				if seen[w.ID] {
					t.Errorf("word %d returned on more than one page", w.ID)
				}
				seen[w.ID] = true
			}
		}
		if len(seen) != wordTotal {
			t.Errorf("pages covered %d words, want %d", len(seen), wordTotal)
		}
	})

	t.Run("groups list", func(t *testing.T) {
		// Group names carry no unique constraint, so equal names must
		// still page cleanly
		for i := 0; i < 14; i++ {
			seedGroup(t, db, "Duplicates")
		}
		const groupTotal = 15 // Homophones plus the duplicates

		seen := make(map[int64]bool)
		for n := 1; n <= 2; n++ {
			groups, total, err := groupRepo.List(pageOf(t, n))
			if err != nil {
				t.Fatalf("List page %d failed: %v", n, err)
			}
			if total != groupTotal {
				t.Errorf("page %d total = %d, want %d", n, total, groupTotal)
			}
			for _, g := range groups {
				if seen[g.ID] {
					t.Errorf("group %d returned on more than one page", g.ID)
				}
				seen[g.ID] = true
			}
		}
		if len(seen) != groupTotal {
			t.Errorf("pages covered %d groups, want %d", len(seen), groupTotal)
		}
	})
}

func TestSessionRepository(t *testing.T) {
	db := newTestDB(t)
	sessionRepo := NewSessionRepository(db)

	groupID := seedGroup(t, db, "Basic Greetings")
	otherGroupID := seedGroup(t, db, "Numbers 1-10")
	activityID := seedActivity(t, db, "Flashcards")
	wordID := seedWord(t, db, "こんにちは", "konnichiwa", "hello", groupID)
	outsideWordID := seedWord(t, db, "一", "ichi", "one", otherGroupID)

	t.Run("Create with missing group", func(t *testing.T) {
		_, err := sessionRepo.Create(9999, activityID)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Create error = %v, want ErrNotFound", err)
		}
	})

	t.Run("Create with missing activity", func(t *testing.T) {
		_, err := sessionRepo.Create(groupID, 9999)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Create error = %v, want ErrNotFound", err)
		}
	})

	t.Run("Create and read back", func(t *testing.T) {
		session, err := sessionRepo.Create(groupID, activityID)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if session.GroupName != "Basic Greetings" || session.ActivityName != "Flashcards" {
			t.Errorf("joined names = %q/%q", session.GroupName, session.ActivityName)
		}
		if session.ReviewItemsCount != 0 {
			t.Errorf("ReviewItemsCount = %d, want 0", session.ReviewItemsCount)
		}
	})

	t.Run("RecordReview for word outside the session group fails", func(t *testing.T) {
		session, err := sessionRepo.Create(groupID, activityID)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		_, err = sessionRepo.RecordReview(session.ID, outsideWordID, true)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("RecordReview error = %v, want ErrNotFound", err)
		}

		// No row was inserted
		got, err := sessionRepo.Get(session.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.ReviewItemsCount != 0 {
			t.Errorf("ReviewItemsCount = %d, want 0", got.ReviewItemsCount)
		}
	})

	t.Run("RecordReview for missing session fails", func(t *testing.T) {
		_, err := sessionRepo.RecordReview(9999, wordID, true)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("RecordReview error = %v, want ErrNotFound", err)
		}
	})

	t.Run("List filters by group", func(t *testing.T) {
		if _, err := sessionRepo.Create(otherGroupID, activityID); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		sessions, total, err := sessionRepo.List(defaultPage(t), &otherGroupID)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if total != 1 {
			t.Errorf("total = %d, want 1", total)
		}
		for _, s := range sessions {
			if s.GroupID != otherGroupID {
				t.Errorf("session %d has group %d, want %d", s.ID, s.GroupID, otherGroupID)
			}
		}
	})

	t.Run("List is newest first", func(t *testing.T) {
		sessions, _, err := sessionRepo.List(defaultPage(t), nil)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		for i := 1; i < len(sessions); i++ {
			if sessions[i-1].ID < sessions[i].ID {
				t.Errorf("sessions out of order: id %d before %d", sessions[i-1].ID, sessions[i].ID)
			}
		}
	})

	t.Run("ListForActivity counts outcomes", func(t *testing.T) {
		session, err := sessionRepo.Create(groupID, activityID)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if _, err := sessionRepo.RecordReview(session.ID, wordID, true); err != nil {
			t.Fatalf("RecordReview failed: %v", err)
		}
		if _, err := sessionRepo.RecordReview(session.ID, wordID, false); err != nil {
			t.Fatalf("RecordReview failed: %v", err)
		}

		sessions, _, err := sessionRepo.ListForActivity(activityID, defaultPage(t))
		if err != nil {
			t.Fatalf("ListForActivity failed: %v", err)
		}
		if len(sessions) == 0 {
			t.Fatal("expected at least one session")
		}
		latest := sessions[0]
		if latest.ReviewCount != 2 || latest.CorrectCount != 1 {
			t.Errorf("latest session counts = %d/%d, want 2/1", latest.ReviewCount, latest.CorrectCount)
		}
	})
}

func TestActivityRepository(t *testing.T) {
	db := newTestDB(t)
	activityRepo := NewActivityRepository(db)

	t.Run("Create and Get", func(t *testing.T) {
		created, err := activityRepo.Create("Typing Tutor", "Practice typing", nil, "http://localhost/typing")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		got, err := activityRepo.Get(created.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Name != "Typing Tutor" || got.LaunchURL != "http://localhost/typing" {
			t.Errorf("Get = %+v", got)
		}
		if got.ThumbnailURL != nil {
			t.Errorf("ThumbnailURL = %v, want nil", got.ThumbnailURL)
		}
	})

	t.Run("Update missing activity returns ErrNotFound", func(t *testing.T) {
		_, err := activityRepo.Update(9999, "x", "y", nil, "http://localhost/x")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Update error = %v, want ErrNotFound", err)
		}
	})

	t.Run("Update rewrites fields", func(t *testing.T) {
		created, err := activityRepo.Create("Old Name", "old", nil, "http://localhost/old")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		thumb := "http://localhost/thumb.png"
		updated, err := activityRepo.Update(created.ID, "New Name", "new", &thumb, "http://localhost/new")
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.Name != "New Name" || updated.Description != "new" {
			t.Errorf("Update = %+v", updated)
		}
		if updated.ThumbnailURL == nil || *updated.ThumbnailURL != thumb {
			t.Errorf("ThumbnailURL = %v, want %q", updated.ThumbnailURL, thumb)
		}
	})

	t.Run("List ordered by name", func(t *testing.T) {
		activities, err := activityRepo.List()
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		for i := 1; i < len(activities); i++ {
			if activities[i-1].Name > activities[i].Name {
				t.Errorf("activities out of order: %q before %q", activities[i-1].Name, activities[i].Name)
			}
		}
	})
}

func TestStatsRepository(t *testing.T) {
	db := newTestDB(t)
	statsRepo := NewStatsRepository(db)
	sessionRepo := NewSessionRepository(db)

	t.Run("Empty database yields zeroes", func(t *testing.T) {
		quick, err := statsRepo.QuickStats()
		if err != nil {
			t.Fatalf("QuickStats failed: %v", err)
		}
		if quick.SuccessRate != 0 || quick.TotalStudySessions != 0 || quick.TotalActiveGroups != 0 || quick.StudyStreakDays != 0 {
			t.Errorf("QuickStats = %+v, want all zero", quick)
		}

		system, err := statsRepo.SystemStats()
		if err != nil {
			t.Fatalf("SystemStats failed: %v", err)
		}
		if system.Words.TotalWords != 0 || system.Reviews.TotalReviews != 0 || system.Reviews.AccuracyPercentage != 0 {
			t.Errorf("SystemStats = %+v, want all zero", system)
		}

		last, err := statsRepo.LastSession()
		if err != nil {
			t.Fatalf("LastSession failed: %v", err)
		}
		if last != nil {
			t.Errorf("LastSession = %+v, want nil", last)
		}

		recent, err := statsRepo.RecentSession()
		if err != nil {
			t.Fatalf("RecentSession failed: %v", err)
		}
		if recent != nil {
			t.Errorf("RecentSession = %+v, want nil", recent)
		}
	})

	t.Run("Zero-word group reports zero progress", func(t *testing.T) {
		seedGroup(t, db, "Empty Group")

		progress, err := statsRepo.StudyProgress()
		if err != nil {
			t.Fatalf("StudyProgress failed: %v", err)
		}
		if len(progress) != 1 {
			t.Fatalf("len(progress) = %d, want 1", len(progress))
		}
		if progress[0].TotalWords != 0 || progress[0].ProgressPercentage != 0 {
			t.Errorf("progress = %+v, want 0 words and 0 percent", progress[0])
		}
	})

	t.Run("Progress and stats after reviews", func(t *testing.T) {
		groupID := seedGroup(t, db, "Basic Greetings")
		activityID := seedActivity(t, db, "Flashcards")
		hello := seedWord(t, db, "こんにちは", "konnichiwa", "hello", groupID)
		seedWord(t, db, "さようなら", "sayounara", "goodbye", groupID)

		session, err := sessionRepo.Create(groupID, activityID)
		if err != nil {
			t.Fatalf("Create session failed: %v", err)
		}
		if _, err := sessionRepo.RecordReview(session.ID, hello, true); err != nil {
			t.Fatalf("RecordReview failed: %v", err)
		}
		if _, err := sessionRepo.RecordReview(session.ID, hello, false); err != nil {
			t.Fatalf("RecordReview failed: %v", err)
		}

		progress, err := statsRepo.StudyProgress()
		if err != nil {
			t.Fatalf("StudyProgress failed: %v", err)
		}
		var found bool
		var total, mastered, pct int
		for _, p := range progress {
			if p.GroupName == "Basic Greetings" {
				found = true
				total, mastered, pct = p.TotalWords, p.MasteredWords, p.ProgressPercentage
			}
		}
		if !found {
			t.Fatal("Basic Greetings missing from progress")
		}
		if total != 2 || mastered != 1 || pct != 50 {
			t.Errorf("progress = %d words, %d mastered, %d percent, want 2/1/50", total, mastered, pct)
		}

		quick, err := statsRepo.QuickStats()
		if err != nil {
			t.Fatalf("QuickStats failed: %v", err)
		}
		if quick.SuccessRate != 50 {
			t.Errorf("SuccessRate = %v, want 50", quick.SuccessRate)
		}
		if quick.TotalStudySessions != 1 || quick.TotalActiveGroups != 1 {
			t.Errorf("QuickStats = %+v", quick)
		}
		if quick.StudyStreakDays != 1 {
			t.Errorf("StudyStreakDays = %d, want 1 (one session today)", quick.StudyStreakDays)
		}

		last, err := statsRepo.LastSession()
		if err != nil {
			t.Fatalf("LastSession failed: %v", err)
		}
		if last == nil || last.ID != session.ID {
			t.Errorf("LastSession = %+v, want session %d", last, session.ID)
		}

		recent, err := statsRepo.RecentSession()
		if err != nil {
			t.Fatalf("RecentSession failed: %v", err)
		}
		if recent == nil || recent.CorrectCount != 1 || recent.WrongCount != 1 {
			t.Errorf("RecentSession = %+v, want 1 correct and 1 wrong", recent)
		}

		system, err := statsRepo.SystemStats()
		if err != nil {
			t.Fatalf("SystemStats failed: %v", err)
		}
		if system.Words.TotalWords != 2 {
			t.Errorf("TotalWords = %d, want 2", system.Words.TotalWords)
		}
		if system.Reviews.TotalReviews != 2 || system.Reviews.CorrectReviews != 1 {
			t.Errorf("Reviews = %+v", system.Reviews)
		}
		if system.Reviews.AccuracyPercentage != 50 {
			t.Errorf("AccuracyPercentage = %v, want 50", system.Reviews.AccuracyPercentage)
		}
	})
}

func TestSystemRepository(t *testing.T) {
	db := newTestDB(t)
	systemRepo := NewSystemRepository(db)
	sessionRepo := NewSessionRepository(db)

	seedData := func(t *testing.T) {
		groupID := seedGroup(t, db, "Basic Greetings")
		activityID := seedActivity(t, db, "Flashcards")
		wordID := seedWord(t, db, "こんにちは", "konnichiwa", "hello", groupID)
		session, err := sessionRepo.Create(groupID, activityID)
		if err != nil {
			t.Fatalf("Create session failed: %v", err)
		}
		if _, err := sessionRepo.RecordReview(session.ID, wordID, true); err != nil {
			t.Fatalf("RecordReview failed: %v", err)
		}
	}

	count := func(t *testing.T, table string) int {
		var n int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		return n
	}

	t.Run("ResetHistory keeps vocabulary", func(t *testing.T) {
		seedData(t)

		if err := systemRepo.ResetHistory(); err != nil {
			t.Fatalf("ResetHistory failed: %v", err)
		}

		if n := count(t, "word_review_items"); n != 0 {
			t.Errorf("word_review_items = %d, want 0", n)
		}
		if n := count(t, "study_sessions"); n != 0 {
			t.Errorf("study_sessions = %d, want 0", n)
		}
		if n := count(t, "words"); n == 0 {
			t.Error("words were deleted by ResetHistory")
		}
		if n := count(t, "groups"); n == 0 {
			t.Error("groups were deleted by ResetHistory")
		}
	})

	t.Run("FullReset empties everything", func(t *testing.T) {
		seedData(t)

		if err := systemRepo.FullReset(); err != nil {
			t.Fatalf("FullReset failed: %v", err)
		}

		for _, table := range []string{"word_review_items", "study_sessions", "words_groups", "words", "groups", "study_activities"} {
			if n := count(t, table); n != 0 {
				t.Errorf("%s = %d rows after FullReset, want 0", table, n)
			}
		}
	})

	t.Run("Vacuum runs on SQLite", func(t *testing.T) {
		ran, err := systemRepo.Vacuum()
		if err != nil {
			t.Fatalf("Vacuum failed: %v", err)
		}
		if !ran {
			t.Error("Vacuum did not run on SQLite")
		}
	})

	t.Run("CheckHealth reports healthy", func(t *testing.T) {
		health, err := systemRepo.CheckHealth()
		if err != nil {
			t.Fatalf("CheckHealth failed: %v", err)
		}
		if health.Status != "healthy" {
			t.Errorf("Status = %q, want healthy", health.Status)
		}
		if !health.Connected || !health.ForeignKeysEnabled {
			t.Errorf("Health = %+v", health)
		}
		if len(health.MissingTables) != 0 {
			t.Errorf("MissingTables = %v, want none", health.MissingTables)
		}
	})
}
