package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asiet-labs/festbot/pkg/models"
)

var templateEvent = &models.Event{
	Name:         "Theme Show",
	Date:         "12/03",
	Time:         "6 PM",
	Venue:        "Auditorium",
	Details:      "The flagship fashion show of the fest.",
	Fest:         "Brahma '26",
	Slots:        "40",
	Amount:       "₹150",
	Coordinators: []string{"Anjali"},
	Phone:        "9876543210",
}

func TestSynthesizerSingleAspectVenue(t *testing.T) {
	s := NewSynthesizer(FixedPicker{})
	reply := s.Respond(templateEvent, NewAspectSet(AspectVenue))
	assert.Contains(t, reply, "Auditorium")
	assert.NotContains(t, reply, "6 PM")
	assert.NotContains(t, reply, "12/03")
}

func TestSynthesizerPairDateVenue(t *testing.T) {
	s := NewSynthesizer(FixedPicker{})
	reply := s.Respond(templateEvent, NewAspectSet(AspectDate, AspectVenue))
	assert.Contains(t, reply, "Auditorium")
	assert.Contains(t, reply, "12/03")
}

func TestSynthesizerTripleDateTimeVenue(t *testing.T) {
	s := NewSynthesizer(FixedPicker{})
	reply := s.Respond(templateEvent, NewAspectSet(AspectDate, AspectTime, AspectVenue))
	assert.Contains(t, reply, "Auditorium")
	assert.Contains(t, reply, "12/03")
	assert.Contains(t, reply, "6 PM")
}

func TestSynthesizerZeroAspectsFullDetail(t *testing.T) {
	s := NewSynthesizer(FixedPicker{})
	reply := s.Respond(templateEvent, NewAspectSet())
	for _, want := range []string{"Theme Show", "12/03", "6 PM", "Auditorium", "₹150", "40", "Anjali"} {
		assert.Contains(t, reply, want)
	}
}

func TestSynthesizerUndefinedPairFallsThrough(t *testing.T) {
	s := NewSynthesizer(FixedPicker{})
	// poster+slots has no dedicated cluster: full detail applies.
	reply := s.Respond(templateEvent, NewAspectSet(AspectPoster, AspectSlots))
	assert.Contains(t, reply, "Auditorium")
	assert.Contains(t, reply, "12/03")
}

func TestSynthesizerMissingValuePlaceholder(t *testing.T) {
	s := NewSynthesizer(FixedPicker{})
	bare := &models.Event{Name: "Mystery Event"}
	reply := s.Respond(bare, NewAspectSet(AspectVenue))
	assert.Contains(t, reply, models.NotSpecified)
}

func TestSynthesizerCoordinatorIncludesPhone(t *testing.T) {
	s := NewSynthesizer(FixedPicker{})
	reply := s.Respond(templateEvent, NewAspectSet(AspectCoordinator))
	assert.Contains(t, reply, "Anjali")
	assert.Contains(t, reply, "9876543210")

	noPhone := &models.Event{Name: "Theme Show", Coordinators: []string{"Anjali"}}
	reply = s.Respond(noPhone, NewAspectSet(AspectCoordinator))
	assert.Contains(t, reply, "Anjali")
	assert.NotContains(t, reply, "contact:")
}

func TestSynthesizerDeterministicWithFixedPicker(t *testing.T) {
	s := NewSynthesizer(FixedPicker{Index: 1})
	first := s.Respond(templateEvent, NewAspectSet(AspectTime))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, s.Respond(templateEvent, NewAspectSet(AspectTime)))
	}
}

func TestSynthesizerPickerVariety(t *testing.T) {
	// Different picker indices hit different phrasings of the same cluster.
	a := NewSynthesizer(FixedPicker{Index: 0}).Respond(templateEvent, NewAspectSet(AspectVenue))
	b := NewSynthesizer(FixedPicker{Index: 1}).Respond(templateEvent, NewAspectSet(AspectVenue))
	assert.NotEqual(t, a, b)
	assert.True(t, strings.Contains(a, "Auditorium") && strings.Contains(b, "Auditorium"))
}

func TestFormatCoordinators(t *testing.T) {
	tests := []struct {
		names []string
		want  string
	}{
		{nil, models.NotSpecified},
		{[]string{"Anjali"}, "Anjali"},
		{[]string{"Anjali", "Rahul"}, "Anjali and Rahul"},
		{[]string{"Anjali", "Rahul", "Meera"}, "Anjali, Rahul and Meera"},
		{[]string{"Anjali", "Rahul", "Meera", "Vivek"}, "Anjali, Rahul, Meera and Vivek"},
	}
	for _, tt := range tests {
		ev := &models.Event{Name: "X", Coordinators: tt.names}
		assert.Equal(t, tt.want, ev.FormatCoordinators())
	}
}
