// Copyright (c) 2026 Rodion Potapov
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors provides user-friendly handling for solver network failures.
package httperrors

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
)

// Kind is the detected category of a transport failure.
type Kind int

const (
	// KindGeneric covers failures no other category matches.
	KindGeneric Kind = iota
	// KindTimeout is a dial or response deadline hit.
	KindTimeout
	// KindDNS is a name resolution failure.
	KindDNS
	// KindConnRefused is an actively refused connection.
	KindConnRefused
	// KindTLS is a failed TLS handshake or certificate problem.
	KindTLS
)

// Classify inspects a transport error and returns its category.
func Classify(err error) Kind {
	switch {
	case isTimeoutError(err):
		return KindTimeout
	case isDNSError(err):
		return KindDNS
	case isConnectionRefusedError(err):
		return KindConnRefused
	case isTLSError(err):
		return KindTLS
	default:
		return KindGeneric
	}
}

// FormatNetworkError prints troubleshooting guidance for a failed request and
// returns the wrapped error for logging. context names the attempted
// operation, e.g. "решении задачи".
func FormatNetworkError(err error, context string) error {
	if err == nil {
		return nil
	}

	switch Classify(err) {
	case KindTimeout:
		showTimeoutError(context)
	case KindDNS:
		showDNSError(context)
	case KindConnRefused:
		showConnectionRefusedError(context)
	case KindTLS:
		showTLSError(context)
	default:
		showGenericError(context, err.Error())
	}

	return fmt.Errorf("network error: %w", err)
}

// isTimeoutError checks if the error is a timeout error.
func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded") {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return false
}

// isDNSError checks if the error is a DNS resolution error.
func isDNSError(err error) bool {
	if err == nil {
		return false
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "dns")
}

// isConnectionRefusedError checks if the error is an actively refused connection.
func isConnectionRefusedError(err error) bool {
	if err == nil {
		return false
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused")
}

// isTLSError checks if the error is a TLS error.
func isTLSError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "ssl") ||
		strings.Contains(errStr, "certificate") ||
		strings.Contains(errStr, "handshake")
}

func showTimeoutError(context string) {
	pterm.Printf("⏱️  Таймаут соединения при %s\n", context)
	pterm.Println()
	pterm.Println("Сервер отвечает слишком долго. Возможные причины:")
	pterm.Println("  • медленное соединение")
	pterm.Println("  • решатель перегружен (LLM-запросы занимают до минуты)")
	pterm.Println()
	pterm.Println("Повторите попытку чуть позже.")
	pterm.Println()
}

func showDNSError(context string) {
	pterm.Printf("🌐 Не удаётся определить адрес сервера при %s\n", context)
	pterm.Println()
	pterm.Println("Проверьте:")
	pterm.Println("  • подключение к интернету")
	pterm.Println("  • адрес решателя (NEUROSYM_SERVER или config.json)")
	pterm.Println()
}

func showConnectionRefusedError(context string) {
	pterm.Printf("🚫 Соединение отклонено при %s\n", context)
	pterm.Println()
	pterm.Println("Сервер не принимает подключения. Возможные причины:")
	pterm.Println("  • решатель не запущен (python app.py, порт 5009)")
	pterm.Println("  • неверный адрес или порт")
	pterm.Println()
}

func showTLSError(context string) {
	pterm.Printf("🔒 Не удалось установить защищённое соединение при %s\n", context)
	pterm.Println()
	pterm.Println("Проверьте:")
	pterm.Println("  • системные дату и время")
	pterm.Println("  • настройки сетевого прокси")
	pterm.Println()
}

func showGenericError(context string, errDetails string) {
	pterm.Printf("❌ Нет связи с решателем при %s\n", context)
	pterm.Println()
	pterm.Println("Проверьте:")
	pterm.Println("  • подключение к интернету")
	pterm.Println("  • что решатель доступен из вашей сети")
	pterm.Println()

	// Show abbreviated error details for debugging
	if errDetails != "" {
		shortErr := errDetails
		if len(shortErr) > 100 {
			shortErr = shortErr[:100] + "..."
		}
		pterm.Debug.Printf("Технические детали: %s\n", shortErr)
		pterm.Println()
	}
}

// ExtractHostFromURL extracts the hostname from a URL for error messages.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "server"
	}
	return u.Host
}
