package management

import (
	"EduPlatform/internal/app_errors"
	"EduPlatform/internal/models"
	"strings"

	"github.com/google/uuid"
)

func validateInput(in models.CourseInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return app_errors.ErrEmptyTitle
	}
	for _, ch := range in.Chapters {
		if strings.TrimSpace(ch.Title) == "" {
			return app_errors.ErrEmptyTitle
		}
		for _, q := range ch.Quizzes {
			if strings.TrimSpace(q.Question) == "" ||
				q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
				return app_errors.ErrInvalidQuiz
			}
		}
	}
	return nil
}

// parseID maps client supplied ids onto stored ones. Anything that is not a
// UUID, such as a client side placeholder, is treated as new.
func parseID(raw string) uuid.UUID {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil
	}
	return id
}

func buildQuiz(q models.QuizInput, order int) models.Quiz {
	return models.Quiz{
		Question:      q.Question,
		Options:       append([]string(nil), q.Options...),
		CorrectOption: q.CorrectOption,
		Order:         order,
	}
}

func buildChapter(ch models.ChapterInput, order int) models.Chapter {
	chapter := models.Chapter{
		Title:   ch.Title,
		Content: ch.Content,
		Order:   order,
		Quizzes: make([]models.Quiz, 0, len(ch.Quizzes)),
	}
	for i, q := range ch.Quizzes {
		chapter.Quizzes = append(chapter.Quizzes, buildQuiz(q, i))
	}
	return chapter
}

// planCreate lays out a new course. Chapter and quiz order follow input
// position.
func planCreate(course models.Course, in models.CourseInput) models.CoursePlan {
	plan := models.CoursePlan{Course: course}
	for i, ch := range in.Chapters {
		plan.InsertChapters = append(plan.InsertChapters, buildChapter(ch, i))
	}
	return plan
}

// planUpdate reconciles the stored chapters of a course with the input.
// Matched chapters are rewritten with their new position, unmatched input
// chapters are inserted and stored chapters missing from the input are
// deleted. Inside a matched chapter, quizzes are matched the same way but
// stored quizzes missing from the input are kept.
func planUpdate(course models.Course, existing []models.Chapter, in models.CourseInput) models.CoursePlan {
	course.Title = in.Title
	course.Description = in.Description
	course.ImageURL = in.ImageURL
	plan := models.CoursePlan{Course: course}

	stored := make(map[uuid.UUID]models.Chapter, len(existing))
	for _, ch := range existing {
		stored[ch.ID] = ch
	}
	kept := make(map[uuid.UUID]bool, len(in.Chapters))

	for i, chIn := range in.Chapters {
		id := parseID(chIn.ID)
		current, ok := stored[id]
		if !ok || kept[id] {
			plan.InsertChapters = append(plan.InsertChapters, buildChapter(chIn, i))
			continue
		}
		kept[id] = true

		storedQuizzes := make(map[uuid.UUID]bool, len(current.Quizzes))
		for _, q := range current.Quizzes {
			storedQuizzes[q.ID] = true
		}
		seenQuizzes := make(map[uuid.UUID]bool, len(chIn.Quizzes))

		chapter := buildChapter(chIn, i)
		chapter.ID = current.ID
		chapter.CourseID = current.CourseID
		for j, qIn := range chIn.Quizzes {
			qid := parseID(qIn.ID)
			if storedQuizzes[qid] && !seenQuizzes[qid] {
				chapter.Quizzes[j].ID = qid
				seenQuizzes[qid] = true
			}
		}
		plan.UpdateChapters = append(plan.UpdateChapters, chapter)
	}

	for _, ch := range existing {
		if !kept[ch.ID] {
			plan.DeleteChapters = append(plan.DeleteChapters, ch.ID)
		}
	}
	return plan
}
