package panel

import "userpanel/internal/domain/user"

// TotalPages computes the number of pages for a result-set size:
// ceil(n / ItemsPerPage), 0 for an empty set.
func TotalPages(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + ItemsPerPage - 1) / ItemsPerPage
}

// PageSlice returns the window of the ordered result set visible on
// the given 1-indexed page. Pages beyond the set yield an empty slice.
func PageSlice(users []user.User, page int) []user.User {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * ItemsPerPage
	if start >= len(users) {
		return nil
	}
	end := start + ItemsPerPage
	if end > len(users) {
		end = len(users)
	}
	return users[start:end]
}

// backOff restores the currentPage invariant after the result set
// shrank underneath it: step back to the last non-empty page rather
// than show an empty one. Page 1 is the floor even for an empty set.
func backOff(page, totalPages int) int {
	if totalPages == 0 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
