package main

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"seotda-server/pkg/model"

	"github.com/sirupsen/logrus"
)

var command = flag.String("c", "game", "specifies the command (game, room, void)")

func main() {
	flag.Parse()
	ctx := context.Background()

	switch *command {
	case "game":
		game := getGame(ctx)
		results, err := game.Results(ctx)
		if err != nil {
			logrus.WithError(err).Fatal("could not load results")
		}

		fmt.Printf("Game %d (%s) in room %s\n", game.ID, game.GameType, game.RoomID)
		ended := "in progress"
		if !game.Ended.IsZero() {
			ended = game.Ended.Format("2006-01-02 15:04")
		}

		fmt.Printf("Started %s, ended %s\n", game.Created.Format("2006-01-02 15:04"), ended)
		for playerID, adjustment := range results {
			fmt.Printf("  player %d: %+d\n", playerID, adjustment)
		}

		if b, err := json.MarshalIndent(game.Data(), "", "  "); err == nil {
			fmt.Println(string(b))
		}
	case "room":
		roomID, err := getInput("Room ID")
		if err != nil {
			logrus.WithError(err).Fatal("could not get answer")
		}

		games, err := model.GamesInRoom(ctx, roomID)
		if err != nil {
			logrus.WithError(err).Fatal("could not load games")
		}

		if len(games) == 0 {
			fmt.Printf("No games in room %s\n", roomID)
			return
		}

		for _, game := range games {
			fmt.Printf("%d\t%s\t%s\n", game.ID, game.GameType, game.Created.Format("2006-01-02 15:04"))
		}
	case "void":
		game := getGame(ctx)

		confirm, err := getInput(fmt.Sprintf("Void game %d in room %s (y/N)", game.ID, game.RoomID))
		if err != nil {
			logrus.WithError(err).Fatal("could not get answer")
		}

		if confirm == "" || strings.ToLower(confirm)[0] != 'y' {
			fmt.Println("Nothing changed")
			return
		}

		if err := game.Delete(ctx); err != nil {
			logrus.WithError(err).Fatal("could not void game")
		}

		fmt.Printf("Game %d voided\n", game.ID)
	default:
		logrus.Fatalf("unknown command: %s", *command)
	}
}

func getGame(ctx context.Context) *model.Game {
	for {
		input, err := getInput("Game ID")
		if err != nil {
			logrus.WithError(err).Fatal("could not get answer")
		}

		if input == "" {
			os.Exit(1)
		}

		id, err := strconv.ParseInt(input, 10, 64)
		if err != nil {
			_, _ = fmt.Fprintln(os.Stderr, "the game id is a number")
			continue
		}

		game, err := model.GameByID(ctx, id)
		if errors.Is(err, sql.ErrNoRows) {
			_, _ = fmt.Fprintf(os.Stderr, "there is no game %d\n", id)
			continue
		} else if err != nil {
			logrus.WithError(err).Fatal("could not load game")
		}

		return game
	}
}

func getInput(question string) (string, error) {
	fmt.Printf("%s: ", question)
	reader := bufio.NewReader(os.Stdin)
	str, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	str = strings.TrimRight(str, "\r\n")

	return str, nil
}
