package model

import (
	"encoding/json"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestTaskDisplayToggle(t *testing.T) {
	tk := Task{Text: "Comprar alianças"}
	orig := tk.Display()
	tk.Done = !tk.Done
	require.Equal(t, "✓ Comprar alianças", tk.Display())
	tk.Done = !tk.Done
	require.Equal(t, orig, tk.Display())
}

func TestTaskDecodesLegacyStrings(t *testing.T) {
	var tasks []Task
	require.NoError(t, json.Unmarshal([]byte(`["✓ Buffet","Convites",{"text":"DJ","done":true}]`), &tasks))
	require.Equal(t, []Task{
		{Text: "Buffet", Done: true},
		{Text: "Convites"},
		{Text: "DJ", Done: true},
	}, tasks)
}

func TestParseAmount(t *testing.T) {
	require.Equal(t, "1500.50", ParseAmount("1500.5").Fixed())
	require.Equal(t, "12.30", ParseAmount("12,3").Fixed())
	require.True(t, ParseAmount("abc").IsNaN())
	require.True(t, ParseAmount("12abc").IsNaN(), "trailing text is not ignored")
	require.Equal(t, "NaN", ParseAmount("").Fixed())
}

func TestAmountSumIsNaNContagious(t *testing.T) {
	sum := AmountFromFloat(10).Add(ParseAmount("x")).Add(AmountFromFloat(5))
	require.True(t, sum.IsNaN())
	require.Equal(t, "15.00", AmountFromFloat(10).Add(AmountFromFloat(5)).Fixed())
}

func TestAmountJSON(t *testing.T) {
	c := Cost{Name: "Fotógrafo", Total: ParseAmount("3000"), Paid: NaN}
	b, err := json.Marshal(c)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"Fotógrafo","total":3000,"paid":null}`, string(b))

	var back Cost
	require.NoError(t, json.Unmarshal(b, &back))
	require.True(t, back.Total.Equal(c.Total))
	require.True(t, back.Paid.IsNaN())
}

func TestNormalizePhone(t *testing.T) {
	require.Equal(t, "+5511999999999", NormalizePhone("11999999999"))
	require.Equal(t, "+5511999999999", NormalizePhone("+5511999999999"))
	require.Equal(t, "+55", NormalizePhone(""))
	require.Len(t, NormalizePhone("1199999999912345"), MaxPhoneLen)

	long := NormalizePhone("11999999999ééé")
	require.True(t, utf8.ValidString(long))
	require.Equal(t, MaxPhoneLen, utf8.RuneCountInString(long))
}

func TestAppointmentIsPast(t *testing.T) {
	now := time.Date(2026, 10, 17, 15, 0, 0, 0, time.Local)
	require.True(t, Appointment{Date: "2026-10-16"}.IsPast(now))
	require.True(t, Appointment{Date: "2026-10-17"}.IsPast(now))
	require.False(t, Appointment{Date: "2026-10-18"}.IsPast(now))
	require.False(t, Appointment{Date: "not a date"}.IsPast(now))
}
