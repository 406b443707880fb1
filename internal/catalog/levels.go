package catalog

import "github.com/verte-zerg/bornomala/internal/model"

// DefaultLevels is the level table of the full 57-lesson syllabus.
func DefaultLevels() []model.LessonLevel {
	return []model.LessonLevel{
		{Title: "মৌলিক অক্ষর", Lessons: seq(0, 5)},
		{Title: "টপ রো ও বিশেষ স্বরবর্ণ", Lessons: seq(6, 14)},
		{Title: "বিশেষ চিহ্ন ও সংখ্যা", Lessons: seq(15, 20)},
		{Title: "যুক্তাক্ষর - ক থেকে ন", Lessons: seq(21, 39)},
		{Title: "যুক্তাক্ষর - প থেকে হ", Lessons: seq(40, 50)},
		{Title: "ব্যবহারিক অনুশীলন", Lessons: seq(51, 56)},
	}
}

// defaultLessonCount is the syllabus size DefaultLevels was written for.
const defaultLessonCount = 57

func seq(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

func singleLevel(count int) []model.LessonLevel {
	if count == 0 {
		return nil
	}
	return []model.LessonLevel{{Title: "সকল পাঠ", Lessons: seq(0, count-1)}}
}
