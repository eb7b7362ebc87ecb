package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/WangWilly/xLens/pkgs/clients/twitterclient"
	"github.com/WangWilly/xLens/pkgs/config"
	"github.com/WangWilly/xLens/pkgs/logging"
	"github.com/gookit/color"
	log "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////
// Main Application Entry Point
////////////////////////////////////////////////////////////////////////////////

func main() {
	println("xLens - X API Reader")

	////////////////////////////////////////////////////////////////////////////
	// Command Line Arguments Setup
	////////////////////////////////////////////////////////////////////////////
	var authMethod string
	var isDebug bool
	var userArg string
	var tweetArg string
	var searchArg string

	flag.StringVar(&authMethod, "auth", string(twitterclient.AUTH_OAUTH1), "auth method: oauth1/oauth2-app/oauth2-user")
	flag.BoolVar(&isDebug, "debug", false, "display debug message")
	flag.StringVar(&userArg, "user", "", "look up the user specified by handle and print recent tweets")
	flag.StringVar(&tweetArg, "tweet", "", "look up a single tweet by id")
	flag.StringVar(&searchArg, "search", "", "search recent tweets by query")
	flag.Parse()

	// context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var homepath string
	if runtime.GOOS == "windows" {
		homepath = os.Getenv("appdata")
	} else {
		homepath = os.Getenv("HOME")
	}
	if homepath == "" {
		panic("failed to get home path from env")
	}

	appRootPath := filepath.Join(homepath, ".x_lens")
	logPath := filepath.Join(appRootPath, "x_lens.log")
	cliLogPath := filepath.Join(appRootPath, "client.log")
	if err := os.MkdirAll(appRootPath, 0755); err != nil {
		log.Fatalln("failed to make app dir", err)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatalln("failed to open log file", err)
	}
	defer logFile.Close()

	cliLogFile, err := os.OpenFile(cliLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatalln("failed to open client log file", err)
	}
	defer cliLogFile.Close()

	////////////////////////////////////////////////////////////////////////////
	// Configuration and Client Setup
	////////////////////////////////////////////////////////////////////////////
	conf, err := config.Load()
	if err != nil {
		color.Red.Println(err)
		os.Exit(1)
	}

	logging.InitLogger(conf.LogLevel, isDebug, logFile)

	client := twitterclient.New(twitterclient.Credentials{
		APIKey:            conf.TwitterAPIKey,
		APISecret:         conf.TwitterAPISecret,
		AccessToken:       conf.TwitterAccessToken,
		AccessTokenSecret: conf.TwitterAccessTokenSecret,
		BearerToken:       conf.TwitterBearerToken,
	}, twitterclient.AuthMethod(authMethod))
	logging.SetClientLogger(client, cliLogFile)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	////////////////////////////////////////////////////////////////////////////
	// Credential Check and Lookups
	////////////////////////////////////////////////////////////////////////////
	if client.VerifyCredentials(ctx) {
		color.Green.Println("credentials ok")
	} else {
		color.Red.Println("credentials check failed")
	}

	if userArg != "" {
		runUserLookup(ctx, client, userArg)
	}
	if tweetArg != "" {
		runTweetLookup(ctx, client, tweetArg)
	}
	if searchArg != "" {
		runSearch(ctx, client, searchArg)
	}

	for _, rl := range client.GetAllRateLimits() {
		log.
			WithFields(log.Fields{
				"operation": rl.Operation,
				"limit":     rl.Limit,
				"remaining": rl.Remaining,
				"reset":     rl.ResetAt,
			}).
			Infoln("observed rate limit")
	}
}

////////////////////////////////////////////////////////////////////////////////

func runUserLookup(ctx context.Context, client *twitterclient.Client, handle string) {
	user := client.GetUser(ctx, handle)
	if user == nil {
		color.Red.Printf("user @%s not found\n", handle)
		return
	}

	fmt.Printf("%s: %d followers, %d following, %d tweets\n",
		user.Title(), user.FollowersCount, user.FollowingCount, user.TweetCount)

	page := client.GetUserTweets(ctx, user.Id, twitterclient.TweetListOptions{MaxResults: 10})
	for _, tweet := range page.Items {
		fmt.Printf("  [%s] %s\n", tweet.CreatedAt.Format("2006-01-02"), tweet.Text)
	}
	if page.NextToken != "" {
		fmt.Println("  more available, next cursor:", page.NextToken)
	}
}

func runTweetLookup(ctx context.Context, client *twitterclient.Client, tweetId string) {
	tweet := client.GetTweet(ctx, tweetId)
	if tweet == nil {
		color.Red.Printf("tweet %s not found\n", tweetId)
		return
	}

	fmt.Printf("[%s] %s\n", tweet.CreatedAt.Format("2006-01-02"), tweet.Text)
	fmt.Printf("  likes=%d reposts=%d replies=%d quotes=%d\n",
		tweet.Metrics.Likes, tweet.Metrics.Reposts, tweet.Metrics.Replies, tweet.Metrics.Quotes)
	for _, media := range tweet.Media {
		fmt.Printf("  media(%s): %s\n", media.Kind, media.Url)
	}
}

func runSearch(ctx context.Context, client *twitterclient.Client, query string) {
	page := client.SearchTweets(ctx, query, twitterclient.SearchOptions{MaxResults: 10})
	fmt.Printf("%d results for %q\n", page.ResultCount, query)
	for _, tweet := range page.Items {
		fmt.Printf("  [%s] %s\n", tweet.AuthorId, tweet.Text)
	}
}
