package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"quizbuilder/database"
	"quizbuilder/internal/quiz"
)

type sampleQuiz struct {
	title       string
	description string
	questions   []quiz.QuestionData
}

var sampleQuizzes = []sampleQuiz{
	{
		title:       "General Knowledge",
		description: "Test your knowledge on various topics",
		questions: []quiz.QuestionData{
			{
				Text:          "What is the capital of France?",
				Type:          "multiple-choice",
				Options:       []string{"Paris", "London", "Berlin", "Madrid"},
				CorrectAnswer: "Paris",
			},
			{
				Text:          "Is Python a type of snake?",
				Type:          "true-false",
				Options:       []string{},
				CorrectAnswer: "true",
			},
			{
				Text:          "What year did World War II end?",
				Type:          "short-answer",
				Options:       []string{},
				CorrectAnswer: "1945",
			},
		},
	},
	{
		title:       "JavaScript Basics",
		description: "Fundamental concepts of JavaScript",
		questions: []quiz.QuestionData{
			{
				Text:          "Which keyword declares a variable in JavaScript?",
				Type:          "multiple-choice",
				Options:       []string{"var", "let", "const", "All of the above"},
				CorrectAnswer: "All of the above",
			},
			{
				Text:          "Is JavaScript case-sensitive?",
				Type:          "true-false",
				Options:       []string{},
				CorrectAnswer: "true",
			},
		},
	},
	{
		title:       "Biology",
		description: "Basic biology questions",
		questions: []quiz.QuestionData{
			{
				Text:          "How many chambers does a human heart have?",
				Type:          "multiple-choice",
				Options:       []string{"2", "3", "4", "5"},
				CorrectAnswer: "4",
			},
			{
				Text:          "What is the smallest unit of life?",
				Type:          "short-answer",
				Options:       []string{},
				CorrectAnswer: "cell",
			},
		},
	},
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	collection := database.OpenCollection(database.Client, "quizzes")

	if err := collection.Drop(ctx); err != nil {
		log.Fatal("Error clearing quizzes: ", err)
	}
	fmt.Println("Cleared existing quizzes")

	documents := make([]interface{}, 0, len(sampleQuizzes))
	for _, sample := range sampleQuizzes {
		item, err := quiz.NewQuiz(sample.title, sample.description, time.Now().UTC())
		if err != nil {
			log.Fatal("Error building sample quiz: ", err)
		}
		for _, data := range sample.questions {
			if _, err := quiz.AppendQuestion(&item, data, time.Now().UTC()); err != nil {
				log.Fatal("Error building sample question: ", err)
			}
		}
		documents = append(documents, item)
	}

	if _, err := collection.InsertMany(ctx, documents); err != nil {
		log.Fatal("Error seeding database: ", err)
	}
	fmt.Printf("Created %d sample quizzes\n", len(sampleQuizzes))

	for i, sample := range sampleQuizzes {
		fmt.Printf("\n%d. %s\n", i+1, sample.title)
		fmt.Printf("   Questions: %d\n", len(sample.questions))
		for qIndex, data := range sample.questions {
			fmt.Printf("   Q%d: %s\n", qIndex+1, data.Text)
		}
	}

	fmt.Println("\nDatabase seeding completed successfully!")
}
