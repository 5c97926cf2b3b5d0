package ui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/fr4nk3nst1ner/vacancysleuth/internal/utils"
	"github.com/pterm/pterm"
)

const bannerText = `
██╗   ██╗ █████╗  ██████╗ █████╗ ███╗   ██╗ ██████╗██╗   ██╗   ▄▄███▄▄·██╗     ███████╗██╗   ██╗████████╗██╗  ██╗
██║   ██║██╔══██╗██╔════╝██╔══██╗████╗  ██║██╔════╝╚██╗ ██╔╝   ██╔════╝██║     ██╔════╝██║   ██║╚══██╔══╝██║  ██║
██║   ██║███████║██║     ███████║██╔██╗ ██║██║      ╚████╔╝    ███████╗██║     █████╗  ██║   ██║   ██║   ███████║
╚██╗ ██╔╝██╔══██║██║     ██╔══██║██║╚██╗██║██║       ╚██╔╝     ╚════██║██║     ██╔══╝  ██║   ██║   ██║   ██╔══██║
 ╚████╔╝ ██║  ██║╚██████╗██║  ██║██║ ╚████║╚██████╗   ██║      ███████║███████╗███████╗╚██████╔╝   ██║   ██║  ██║
  ╚═══╝  ╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚═╝  ╚═══╝ ╚═════╝   ╚═╝      ╚═▀▀▀══╝╚══════╝╚══════╝ ╚═════╝    ╚═╝   ╚═╝  ╚═╝
 hh.ru vacancy search
`

// ColorizeText applies a random color fade to the input text
func ColorizeText(text string) string {
	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	firstPoint := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	runes := []rune(text)
	half := len(runes) / 2
	if half == 0 {
		half = 1
	}

	var b strings.Builder
	for i, r := range runes {
		b.WriteString(startColor.Fade(0, float32(len(runes)), float32(i%half), firstPoint).Sprint(string(r)))
	}
	return b.String()
}

// PrintBanner displays the application banner
func PrintBanner(w io.Writer, silence bool) {
	if !silence {
		fmt.Fprintln(w, ColorizeText(bannerText))
	}
}

// ColorizeSalary colors a salary amount by how high it is. Zero means the
// vacancy has no salary.
func ColorizeSalary(amount int) string {
	if amount <= 0 {
		return pterm.Red("не указана")
	}

	formatted := utils.FormatSalary(amount)
	switch {
	case amount >= 300000:
		return pterm.Green(formatted)
	case amount >= 200000:
		return pterm.LightGreen(formatted)
	case amount >= 100000:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}
