package links

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/alexisbeaulieu97/linkpage/internal/notice"
	pkgerrors "github.com/alexisbeaulieu97/linkpage/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLinks() []Link {
	return []Link{
		{ID: "1", Title: "Personal Website", URL: "https://www.example.com/"},
		{ID: "2", Title: "X / Twitter", URL: "https://x.com/someone"},
		{ID: "3", Title: "GitHub"},
	}
}

func counterIDs(prefix string) IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func newTestManager(t *testing.T, opts ...Option) (*Manager, *notice.Recorder) {
	t.Helper()
	rec := &notice.Recorder{}
	m, err := NewManager(seedLinks(), append([]Option{WithNotifier(rec)}, opts...)...)
	require.NoError(t, err)
	return m, rec
}

func TestNewManagerRejectsDuplicateSeedIDs(t *testing.T) {
	_, err := NewManager([]Link{{ID: "a", Title: "A"}, {ID: "a", Title: "B"}})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))

	_, err = NewManager([]Link{{Title: "no id"}})
	require.Error(t, err)
}

func TestAddLinkAppendsAndClearsDraft(t *testing.T) {
	m, rec := newTestManager(t, WithIDGenerator(counterIDs("new-")))

	m.HandleDraftChange(DraftTitle, "Site")
	m.HandleDraftChange(DraftURL, "https://example.com")
	assert.Equal(t, Draft{Title: "Site", URL: "https://example.com"}, m.Draft())

	link, err := m.SubmitDraft()
	require.NoError(t, err)
	assert.Equal(t, Link{ID: "new-1", Title: "Site", URL: "https://example.com"}, link)

	all := m.Links()
	require.Len(t, all, 4)
	assert.Equal(t, link, all[3])
	assert.Equal(t, Draft{}, m.Draft())
	assert.Equal(t, []string{"Link added"}, rec.Titles())
}

func TestAddLinkValidation(t *testing.T) {
	tests := []struct {
		name    string
		draft   Draft
		message string
		title   string
	}{
		{"empty title", Draft{Title: "", URL: "https://x.com"}, MsgMissingFields, "Error"},
		{"blank title", Draft{Title: "   ", URL: "https://x.com"}, MsgMissingFields, "Error"},
		{"empty url", Draft{Title: "X", URL: ""}, MsgMissingFields, "Error"},
		{"relative url", Draft{Title: "X", URL: "not-a-url"}, MsgInvalidURL, "Invalid URL"},
		{"missing host", Draft{Title: "X", URL: "https://"}, MsgInvalidURL, "Invalid URL"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, rec := newTestManager(t)
			m.HandleDraftChange(DraftTitle, tc.draft.Title)
			m.HandleDraftChange(DraftURL, tc.draft.URL)
			before := m.Links()

			_, err := m.AddLink(tc.draft)
			require.Error(t, err)
			assert.True(t, pkgerrors.IsValidation(err))
			assert.Equal(t, tc.message, pkgerrors.UserMessage(err))
			assert.Equal(t, before, m.Links())
			assert.Equal(t, tc.draft, m.Draft())

			last, ok := rec.Last()
			require.True(t, ok)
			assert.Equal(t, notice.VariantDestructive, last.Variant)
			assert.Equal(t, tc.title, last.Title)
		})
	}
}

func TestAddLinkTrimsInput(t *testing.T) {
	m, _ := newTestManager(t)

	link, err := m.AddLink(Draft{Title: "  Blog ", URL: " https://blog.example.com "})
	require.NoError(t, err)
	assert.Equal(t, "Blog", link.Title)
	assert.Equal(t, "https://blog.example.com", link.URL)
}

func TestAddThenDeleteRestoresCollection(t *testing.T) {
	m, rec := newTestManager(t)
	before := m.Links()

	link, err := m.AddLink(Draft{Title: "Site", URL: "https://example.com"})
	require.NoError(t, err)
	m.DeleteLink(link.ID)

	assert.Equal(t, before, m.Links())
	assert.Equal(t, []string{"Link added", "Link deleted"}, rec.Titles())
}

func TestDeleteLinkIsIdempotent(t *testing.T) {
	m, rec := newTestManager(t)

	m.DeleteLink("2")
	m.DeleteLink("2")
	m.DeleteLink("missing")

	ids := []string{}
	for _, l := range m.Links() {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []string{"1", "3"}, ids)
	assert.Len(t, rec.All(), 3)
}

func TestUpdateLinkInPlace(t *testing.T) {
	m, rec := newTestManager(t)

	require.NoError(t, m.UpdateLink(Link{ID: "3", Title: "GitHub", URL: "https://github.com/someone"}))

	got, ok := m.Get("3")
	require.True(t, ok)
	assert.Equal(t, "https://github.com/someone", got.URL)
	assert.Equal(t, "3", m.Links()[2].ID)
	assert.Equal(t, []string{"Link updated"}, rec.Titles())
}

func TestUpdateLinkUnknownIDIsNoOp(t *testing.T) {
	m, _ := newTestManager(t)
	before := m.Links()

	require.NoError(t, m.UpdateLink(Link{ID: "nope", Title: "Ghost", URL: "https://ghost.example"}))
	assert.Equal(t, before, m.Links())
}

func TestUpdateLinkRejectsInvalidValues(t *testing.T) {
	m, _ := newTestManager(t)
	before := m.Links()

	err := m.UpdateLink(Link{ID: "1", Title: " ", URL: "https://example.com"})
	require.Error(t, err)
	assert.Equal(t, MsgMissingTitle, pkgerrors.UserMessage(err))

	err = m.UpdateLink(Link{ID: "1", Title: "Site", URL: "example.com"})
	require.Error(t, err)
	assert.Equal(t, MsgInvalidURL, pkgerrors.UserMessage(err))

	err = m.UpdateLink(Link{ID: "1", Title: "Site", URL: "  "})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
	assert.Equal(t, MsgInvalidURL, pkgerrors.UserMessage(err))

	assert.Equal(t, before, m.Links())
}

func TestUpdateLinkKeepsURLOnAddedLinks(t *testing.T) {
	m, rec := newTestManager(t, WithIDGenerator(counterIDs("new-")))

	added, err := m.AddLink(Draft{Title: "Site", URL: "https://example.com"})
	require.NoError(t, err)

	err = m.UpdateLink(Link{ID: added.ID, Title: "Site", URL: ""})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))

	got, ok := m.Get(added.ID)
	require.True(t, ok)
	assert.Equal(t, "https://example.com", got.URL)

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, notice.VariantDestructive, last.Variant)
}

func TestUpdateLinkAllowsPlaceholderWithoutURL(t *testing.T) {
	m, _ := newTestManager(t)

	require.NoError(t, m.UpdateLink(Link{ID: "3", Title: "Code"}))
	got, ok := m.Get("3")
	require.True(t, ok)
	assert.Equal(t, Link{ID: "3", Title: "Code"}, got)

	require.NoError(t, m.UpdateLink(Link{ID: "3", Title: "Code", URL: "https://github.com/someone"}))
	require.NoError(t, m.UpdateLink(Link{ID: "3", Title: "Code"}))
}

func TestIDsStayUniqueUnderRandomOperations(t *testing.T) {
	// A generator that repeats itself forces the collision path.
	repeating := func() IDGenerator {
		ids := []string{"1", "2", "x", "x"}
		n := 0
		return func() string {
			id := ids[n%len(ids)]
			n++
			return id
		}
	}

	for _, gen := range []IDGenerator{NewULIDGenerator(nil), repeating()} {
		m, _ := newTestManager(t, WithIDGenerator(gen))
		rnd := rand.New(rand.NewSource(7))

		for i := 0; i < 200; i++ {
			current := m.Links()
			switch rnd.Intn(3) {
			case 0:
				_, err := m.AddLink(Draft{Title: fmt.Sprintf("L%d", i), URL: "https://example.com/" + fmt.Sprint(i)})
				require.NoError(t, err)
			case 1:
				if len(current) > 0 {
					m.DeleteLink(current[rnd.Intn(len(current))].ID)
				}
			case 2:
				if len(current) > 0 {
					target := current[rnd.Intn(len(current))]
					target.Title = "renamed"
					require.NoError(t, m.UpdateLink(target))
				}
			}

			seen := map[string]bool{}
			for _, l := range m.Links() {
				require.False(t, seen[l.ID], "duplicate id %s", l.ID)
				seen[l.ID] = true
			}
		}
	}
}

func TestULIDGeneratorIsMonotonic(t *testing.T) {
	gen := NewULIDGenerator(nil)
	prev := gen()
	for i := 0; i < 100; i++ {
		next := gen()
		require.Len(t, next, 26)
		require.Greater(t, next, prev)
		prev = next
	}
}

func TestLinksReturnsCopy(t *testing.T) {
	m, _ := newTestManager(t)

	got := m.Links()
	got[0].Title = "mutated"
	assert.Equal(t, "Personal Website", m.Links()[0].Title)
	assert.Equal(t, 3, m.Len())
}
