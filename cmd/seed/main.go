package main

import (
	"context"
	"time"

	"MovieBase/internal/config"
	"MovieBase/internal/model"
	"MovieBase/internal/repo"
	"MovieBase/internal/service"

	"go.uber.org/zap"
)

type seedUser struct {
	username string
	email    string
	password string
	movie    model.Movie
}

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

// стартовый набор: шесть пользователей, у каждого по одному фильму
var seedUsers = []seedUser{
	{
		username: "Alice", email: "alice@moviebase.io", password: "alice",
		movie: model.Movie{
			MovieName:    "The Shawshank Redemption",
			Description:  "Two imprisoned men bond over several years, finding solace and eventual redemption through acts of common decency.",
			DirectorName: "Frank Darabont",
			ReleaseDate:  date("1994-09-22"),
		},
	},
	{
		username: "Bob", email: "bob@moviebase.io", password: "bob",
		movie: model.Movie{
			MovieName:    "The Godfather",
			Description:  "The aging patriarch of an organized crime dynasty transfers control of his clandestine empire to his reluctant son.",
			DirectorName: "Francis Ford Coppola",
			ReleaseDate:  date("1972-03-24"),
		},
	},
	{
		username: "Charlie", email: "charlie@moviebase.io", password: "charlie",
		movie: model.Movie{
			MovieName:    "Pulp Fiction",
			Description:  "The lives of two mob hitmen, a boxer, a gangster and his wife, and a pair of diner bandits intertwine in four tales of violence and redemption.",
			DirectorName: "Quentin Tarantino",
			ReleaseDate:  date("1994-10-14"),
		},
	},
	{
		username: "David", email: "david@moviebase.io", password: "david",
		movie: model.Movie{
			MovieName:    "The Dark Knight",
			Description:  "When the menace known as The Joker emerges from his mysterious past, he wreaks havoc and chaos on the people of Gotham.",
			DirectorName: "Christopher Nolan",
			ReleaseDate:  date("2008-07-18"),
		},
	},
	{
		username: "Eve", email: "eve@moviebase.io", password: "eve",
		movie: model.Movie{
			MovieName:    "Inception",
			Description:  "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
			DirectorName: "Christopher Nolan",
			ReleaseDate:  date("2010-07-16"),
		},
	},
	{
		username: "Frank", email: "frank@moviebase.io", password: "frank",
		movie: model.Movie{
			MovieName:    "The Matrix",
			Description:  "A computer hacker learns from mysterious rebels about the true nature of his reality and his role in the war against its controllers.",
			DirectorName: "Lana Wachowski, Lilly Wachowski",
			ReleaseDate:  date("1999-03-31"),
		},
	},
}

func main() {
	cfg := config.NewConfig()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	defer func() { _ = logger.Sync() }()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	movieRepo := repo.NewMovieRepository(gormDB)
	ctx := context.Background()

	sugar.Infow("Start seeding")
	for _, su := range seedUsers {
		digest, err := service.HashPassword(su.password)
		if err != nil {
			sugar.Fatalw("failed to hash password", "user", su.username, "error", err)
		}

		user, err := userRepo.CreateUser(ctx, &model.User{
			Username: su.username,
			Email:    su.email,
			Password: digest,
		})
		if err != nil {
			// повторный запуск: занятые email пропускаем
			sugar.Warnw("skip user", "email", su.email, "error", err)
			continue
		}

		movie := su.movie
		movie.CreatedByID = &user.ID
		if err := movieRepo.Create(ctx, &movie); err != nil {
			sugar.Fatalw("failed to create movie", "movie", movie.MovieName, "error", err)
		}

		sugar.Infow("Created user with movie", "user_id", user.ID, "movie_id", movie.ID)
	}
	sugar.Infow("Seeding finished")
}
