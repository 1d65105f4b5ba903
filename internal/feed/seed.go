package feed

import "campuslinkhub/models"

// DemoPosts returns the posts a fresh demo feed starts with.
func DemoPosts() models.Posts {
	return models.Posts{
		{
			ID:       1,
			Username: "junior_anna",
			Content: "Had an amazing time at the Tech Fest last week! Loved the coding challenges and workshops. " +
				"Special thanks to the seniors for their guidance. Can't wait for the next event!",
			ImageURL: "path/to/tech-fest-image.jpg",
			Likes:    15,
			Comments: []models.Comment{
				{Username: "senior_john", Comment: "Glad you enjoyed it, Anna! Keep participating in these events, they're great for learning."},
				{Username: "junior_mike", Comment: "Same here! The hackathon was intense but fun."},
			},
		},
		{
			ID:       2,
			Username: "senior_emily",
			Content: "To all juniors: Don't hesitate to ask about anything related to placements or course selections. " +
				"We seniors are here to help you out. Also, here's a recap of the Cultural Fest. It was a blast!",
			ImageURL: "path/to/cultural-fest-image.jpg",
			Likes:    20,
			Comments: []models.Comment{
				{Username: "junior_nina", Comment: "Thanks for the offer, Emily! What's the best way to prepare for campus interviews?"},
				{Username: "senior_emily", Comment: "Nina, focus on your technical skills and soft skills. Practice coding problems and work on your resume."},
			},
		},
	}
}
