package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

type LogStats struct {
	TotalErrors       int
	LoginSuccess      int
	LoginFailures     int
	OrdersCreated     int
	PaymentsConfirmed int
	SignatureMismatch int
	VotesCast         int
	DuplicateVotes    int
	UserActivities    map[string]int
	ErrorPatterns     map[string]int
}

func main() {
	today := time.Now().Format("2006-01-02")
	logDir := "./logs"

	stats := &LogStats{
		UserActivities: make(map[string]int),
		ErrorPatterns:  make(map[string]int),
	}

	analyzeErrorLogs(filepath.Join(logDir, fmt.Sprintf("error-%s.log", today)), stats)
	analyzeInfoLogs(filepath.Join(logDir, fmt.Sprintf("info-%s.log", today)), stats)

	printReport(stats)
}

func analyzeErrorLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		stats.TotalErrors++
		extractErrorPattern(line, stats)
	}
}

func analyzeInfoLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.Contains(line, "logged in:") {
			stats.LoginSuccess++
			extractUserActivity(line, stats)
		}
		if strings.Contains(line, "Invalid credentials") || strings.Contains(line, "Invalid admin credentials") {
			stats.LoginFailures++
			extractUserActivity(line, stats)
		}
		if strings.Contains(line, "Order") && strings.Contains(line, "created for user") {
			stats.OrdersCreated++
		}
		if strings.Contains(line, "Payment confirmed for order") {
			stats.PaymentsConfirmed++
		}
		if strings.Contains(line, "Signature mismatch for order") {
			stats.SignatureMismatch++
		}
		if strings.Contains(line, "Vote created on review") || strings.Contains(line, "Vote updated on review") {
			stats.VotesCast++
		}
		if strings.Contains(line, "already cast the same vote") {
			stats.DuplicateVotes++
		}
	}
}

func extractUserActivity(line string, stats *LogStats) {
	emailRegex := regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	if email := emailRegex.FindString(line); email != "" {
		stats.UserActivities[email]++
	}
}

func extractErrorPattern(line string, stats *LogStats) {
	parts := strings.Split(line, ":")
	if len(parts) > 1 {
		errorMsg := strings.TrimSpace(parts[1])
		stats.ErrorPatterns[errorMsg]++
	}
}

func printReport(stats *LogStats) {
	fmt.Println("\n=== Log Analysis Report ===")
	fmt.Println("Generated:", time.Now().Format("2006-01-02 15:04:05"))

	fmt.Println("\n1. Authentication:")
	fmt.Printf("   Successful Logins: %d\n", stats.LoginSuccess)
	fmt.Printf("   Failed Logins: %d\n", stats.LoginFailures)

	fmt.Println("\n2. Orders and Payments:")
	fmt.Printf("   Orders Created: %d\n", stats.OrdersCreated)
	fmt.Printf("   Payments Confirmed: %d\n", stats.PaymentsConfirmed)
	fmt.Printf("   Signature Mismatches: %d\n", stats.SignatureMismatch)

	fmt.Println("\n3. Review Votes:")
	fmt.Printf("   Votes Cast: %d\n", stats.VotesCast)
	fmt.Printf("   Rejected Duplicates: %d\n", stats.DuplicateVotes)

	fmt.Println("\n4. Error Statistics:")
	fmt.Printf("   Total Errors: %d\n", stats.TotalErrors)

	fmt.Println("\n5. Most Active Users:")
	printTopUsers(stats.UserActivities, 5)

	fmt.Println("\n6. Most Common Errors:")
	printTopErrors(stats.ErrorPatterns, 5)
}

func printTopUsers(users map[string]int, limit int) {
	type userActivity struct {
		email string
		count int
	}

	var activities []userActivity
	for email, count := range users {
		activities = append(activities, userActivity{email, count})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].count > activities[j].count
	})

	for i, activity := range activities {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d activities\n", activity.email, activity.count)
	}
}

func printTopErrors(errors map[string]int, limit int) {
	type errorCount struct {
		message string
		count   int
	}

	var errorList []errorCount
	for msg, count := range errors {
		errorList = append(errorList, errorCount{msg, count})
	}

	sort.Slice(errorList, func(i, j int) bool {
		return errorList[i].count > errorList[j].count
	})

	for i, err := range errorList {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d occurrences\n", err.message, err.count)
	}
}
