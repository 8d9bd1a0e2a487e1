package services

import (
	"fmt"
	"strings"

	"blogly/internal/apperror"
	"blogly/internal/models"
	"blogly/internal/repositories"
)

// AnchorKind says which side of the post/tag relation a reconcile starts from.
type AnchorKind string

const (
	// AnchorPost reconciles a post's tags, resolved by tag name.
	AnchorPost AnchorKind = "post"
	// AnchorTag reconciles a tag's posts, resolved by post title.
	AnchorTag AnchorKind = "tag"
)

// ReconcileResult reports how a submitted name set was applied.
type ReconcileResult struct {
	// Linked holds the names that resolved and are now linked, in submission order.
	Linked []string `json:"linked"`
	// Unresolved holds the names that matched nothing and were dropped.
	Unresolved []string `json:"unresolved,omitempty"`
}

// Reconciler makes the set of links of one post or tag equal a submitted set
// of names for the other side.
type Reconciler struct {
	strict bool
}

// NewReconciler creates a Reconciler. When strict is set an unresolved name
// fails the reconcile with a ValidationError; otherwise it is dropped.
func NewReconciler(strict bool) *Reconciler {
	return &Reconciler{strict: strict}
}

// Reconcile deletes every existing link of the anchor, resolves names by
// exact match, and inserts one link per resolved name. It must run inside the
// caller's transaction. Calling it twice with the same names is a no-op the
// second time.
func (r *Reconciler) Reconcile(repos repositories.Repositories, anchorID uint, kind AnchorKind, names []string) (ReconcileResult, error) {
	desired := normalizeNames(names)

	var (
		ids   map[string]uint
		err   error
		field string
	)
	switch kind {
	case AnchorPost:
		field = "tags"
		if err = repos.PostTags.DeleteByPost(anchorID); err != nil {
			return ReconcileResult{}, err
		}
		ids, err = repos.Tags.FindIDsByNames(desired)
	case AnchorTag:
		field = "posts"
		if err = repos.PostTags.DeleteByTag(anchorID); err != nil {
			return ReconcileResult{}, err
		}
		ids, err = repos.Posts.FindIDsByTitles(desired)
	default:
		return ReconcileResult{}, fmt.Errorf("unknown reconcile anchor %q", kind)
	}
	if err != nil {
		return ReconcileResult{}, err
	}

	result := ReconcileResult{Linked: make([]string, 0, len(desired))}
	links := make([]models.PostTag, 0, len(desired))
	linked := make(map[uint]bool, len(desired))
	for _, name := range desired {
		otherID, ok := ids[name]
		if !ok {
			result.Unresolved = append(result.Unresolved, name)
			continue
		}
		if linked[otherID] {
			continue
		}
		linked[otherID] = true
		result.Linked = append(result.Linked, name)
		if kind == AnchorPost {
			links = append(links, models.PostTag{PostID: anchorID, TagID: otherID})
		} else {
			links = append(links, models.PostTag{PostID: otherID, TagID: anchorID})
		}
	}

	if r.strict && len(result.Unresolved) > 0 {
		return ReconcileResult{}, apperror.NewValidation(field,
			fmt.Sprintf("Unknown %s: %s", field, strings.Join(result.Unresolved, ", ")))
	}
	if err := repos.PostTags.Create(links); err != nil {
		return ReconcileResult{}, err
	}
	return result, nil
}

// normalizeNames trims names, drops blanks and collapses duplicates while
// keeping first-seen order.
func normalizeNames(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
