package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/grimdank-editor/internal/pagination"
)

type PaginationTestSuite struct {
	suite.Suite
}

func TestPaginationSuite(t *testing.T) {
	suite.Run(t, new(PaginationTestSuite))
}

func (s *PaginationTestSuite) TestEstimateTotal() {
	testCases := []struct {
		name     string
		query    pagination.Query
		returned int
		expected int
	}{
		{"empty page", pagination.Query{Limit: 50, Skip: 100}, 0, 100},
		{"short page", pagination.Query{Limit: 50, Skip: 100}, 20, 120},
		{"full page", pagination.Query{Limit: 50, Skip: 100}, 50, 151},
		{"next full page", pagination.Query{Limit: 50, Skip: 150}, 9, 159},
		{"first page", pagination.Query{Limit: 10}, 10, 11},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, pagination.EstimateTotal(tc.query, tc.returned))
		})
	}
}

func (s *PaginationTestSuite) TestFullPagesDoNotShrinkTheEstimate() {
	// 100 skipped, 50 returned, then the next 10 pages
	first := pagination.EstimateTotal(pagination.Query{Limit: 50, Skip: 100}, 50)
	s.Equal(151, first)

	second := pagination.EstimateTotal(pagination.Query{Limit: 50, Skip: 150}, 10)
	s.Equal(160, second)
	s.GreaterOrEqual(second, first)

	prev := 0
	for skip := 0; skip <= 500; skip += 50 {
		est := pagination.EstimateTotal(pagination.Query{Limit: 50, Skip: skip}, 50)
		s.GreaterOrEqual(est, prev)
		prev = est
	}
}

func (s *PaginationTestSuite) TestTotalPrefersReported() {
	reported := 37
	q := pagination.Query{Limit: 10, Skip: 0}

	s.Equal(37, pagination.Total(q, 10, &reported))
	s.Equal(11, pagination.Total(q, 10, nil))
}

func (s *PaginationTestSuite) TestSkip() {
	s.Equal(0, pagination.Skip(1, 20))
	s.Equal(40, pagination.Skip(3, 20))
	s.Equal(0, pagination.Skip(0, 20))
	s.Equal(0, pagination.Skip(2, 0))
}

func (s *PaginationTestSuite) TestTotalPages() {
	s.Equal(0, pagination.TotalPages(0, 10))
	s.Equal(1, pagination.TotalPages(1, 10))
	s.Equal(1, pagination.TotalPages(10, 10))
	s.Equal(2, pagination.TotalPages(11, 10))
	s.Equal(0, pagination.TotalPages(5, 0))
}

func (s *PaginationTestSuite) TestClampPage() {
	testCases := []struct {
		name     string
		page     int
		total    int
		expected int
	}{
		{"within range", 2, 30, 2},
		{"total shrank", 5, 21, 3},
		{"no results", 4, 0, 1},
		{"below one", 0, 30, 1},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, pagination.ClampPage(tc.page, tc.total, 10))
		})
	}
}
