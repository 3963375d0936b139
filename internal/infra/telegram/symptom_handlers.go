// internal/infra/telegram/symptom_handlers.go
package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pinkguard_bot/internal/app"
	"pinkguard_bot/internal/domain/symptom"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

var (
	btnSymptomToggle  = telebot.Btn{Unique: "sym_toggle"}
	btnSymptomAnalyze = telebot.Btn{Unique: "sym_analyze"}
	btnSymptomReset   = telebot.Btn{Unique: "sym_reset"}
	btnNutritionTab   = telebot.Btn{Unique: "nut_tab"}
)

// RegisterSymptomHandlers wires the symptom checklist and the nutrition tabs.
func RegisterSymptomHandlers(b *telebot.Bot, symptoms *app.SymptomService, gate telebot.MiddlewareFunc, baseLogger *logrus.Entry) {
	b.Handle("/symptoms", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler":   "/symptoms",
			"sender_id": c.Sender().ID,
		})
		key := firstArg(c)
		list, err := symptoms.Checklist(c.Sender().ID, key)
		if err != nil {
			handlerLogger.WithError(err).Info("Unknown symptom category requested")
			return c.Send(unknownCategoryText(key))
		}
		text, markup := FormatChecklist(list)
		return c.Send(text, markup)
	}, gate)

	b.Handle(&btnSymptomToggle, func(c telebot.Context) error {
		args := c.Args() // category|index
		if len(args) != 2 {
			c.Bot().OnError(fmt.Errorf("invalid symptom toggle data: %q", c.Callback().Data), c)
			return c.Respond(&telebot.CallbackResponse{Text: "Unknown action."})
		}
		index, err := strconv.Atoi(args[1])
		if err != nil {
			c.Bot().OnError(fmt.Errorf("invalid symptom index %q: %w", args[1], err), c)
			return c.Respond(&telebot.CallbackResponse{Text: "Unknown action."})
		}
		list, err := symptoms.Toggle(c.Sender().ID, args[0], index)
		if err != nil {
			c.Bot().OnError(fmt.Errorf("symptom toggle failed: %w", err), c)
			return c.Respond(&telebot.CallbackResponse{Text: "Unknown symptom."})
		}
		text, markup := FormatChecklist(list)
		if err := c.Edit(text, markup); err != nil {
			return err
		}
		return c.Respond()
	}, gate)

	b.Handle(&btnSymptomAnalyze, func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler":   "sym_analyze",
			"sender_id": c.Sender().ID,
		})
		result, err := symptoms.Analyze(c.Sender().ID, c.Callback().Data)
		if err != nil {
			c.Bot().OnError(fmt.Errorf("symptom analysis failed: %w", err), c)
			return c.Respond(&telebot.CallbackResponse{Text: "Unknown category."})
		}
		handlerLogger.WithFields(logrus.Fields{
			"category": result.Category.Key,
			"count":    result.Count,
			"tier":     result.Tier,
		}).Info("Symptoms analyzed")
		if err := c.Send(FormatAssessment(result)); err != nil {
			return err
		}
		return c.Respond()
	}, gate)

	b.Handle(&btnSymptomReset, func(c telebot.Context) error {
		list, err := symptoms.Reset(c.Sender().ID, c.Callback().Data)
		if err != nil {
			c.Bot().OnError(fmt.Errorf("symptom reset failed: %w", err), c)
			return c.Respond(&telebot.CallbackResponse{Text: "Unknown category."})
		}
		text, markup := FormatChecklist(list)
		if err := c.Edit(text, markup); err != nil && !errors.Is(err, telebot.ErrSameMessageContent) {
			return err
		}
		return c.Respond(&telebot.CallbackResponse{Text: "Selection cleared."})
	}, gate)

	b.Handle("/nutrition", func(c telebot.Context) error {
		key := firstArg(c)
		if key == "" {
			key = symptom.DefaultCategory
		}
		category, ok := symptom.Lookup(key)
		if !ok {
			return c.Send(unknownCategoryText(key))
		}
		text, markup := FormatNutrition(category)
		return c.Send(text, markup)
	}, gate)

	b.Handle(&btnNutritionTab, func(c telebot.Context) error {
		category, ok := symptom.Lookup(c.Callback().Data)
		if !ok {
			return c.Respond(&telebot.CallbackResponse{Text: "Unknown tab."})
		}
		text, markup := FormatNutrition(category)
		if err := c.Edit(text, markup); err != nil && !errors.Is(err, telebot.ErrSameMessageContent) {
			return err
		}
		return c.Respond()
	}, gate)
}

// FormatChecklist renders the checklist with one toggle button per symptom.
func FormatChecklist(list app.Checklist) (string, *telebot.ReplyMarkup) {
	markup := &telebot.ReplyMarkup{}
	rows := make([]telebot.Row, 0, len(list.Category.Symptoms)+1)
	for i, label := range list.Category.Symptoms {
		box := "☐"
		if list.Selected[i] {
			box = "☑"
		}
		rows = append(rows, markup.Row(markup.Data(box+" "+label, btnSymptomToggle.Unique, list.Category.Key, strconv.Itoa(i))))
	}
	rows = append(rows, markup.Row(
		markup.Data("Analyze", btnSymptomAnalyze.Unique, list.Category.Key),
		markup.Data("Reset", btnSymptomReset.Unique, list.Category.Key),
	))
	markup.Inline(rows...)

	text := fmt.Sprintf("%s\n\nTap the symptoms you have, then press Analyze. Selected: %d", list.Category.Title, list.Count())
	return text, markup
}

// FormatAssessment renders the risk tier with the category's food tips.
func FormatAssessment(a app.Assessment) string {
	var b strings.Builder
	b.WriteString(a.Tier.Message())
	b.WriteString(fmt.Sprintf("\nYou selected %d symptoms.\n\nRecommended foods:\n", a.Count))
	for _, food := range a.Category.Foods {
		b.WriteString("• " + food + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatNutrition renders one tab of food recommendations with tab buttons.
func FormatNutrition(active symptom.Category) (string, *telebot.ReplyMarkup) {
	markup := &telebot.ReplyMarkup{}
	tabs := make([]telebot.Btn, 0)
	for _, key := range symptom.Keys() {
		label := key
		if key == active.Key {
			label = "• " + key
		}
		tabs = append(tabs, markup.Data(label, btnNutritionTab.Unique, key))
	}
	markup.Inline(markup.Row(tabs...))

	var b strings.Builder
	b.WriteString(active.Title + " – nutrition\n\n")
	for _, food := range active.Foods {
		b.WriteString("• " + food + "\n")
	}
	return strings.TrimRight(b.String(), "\n"), markup
}

func firstArg(c telebot.Context) string {
	args := c.Args()
	if len(args) == 0 {
		return ""
	}
	return strings.ToLower(args[0])
}

func unknownCategoryText(key string) string {
	return fmt.Sprintf("Unknown category %q. Choose one of: %s", key, strings.Join(symptom.Keys(), ", "))
}
