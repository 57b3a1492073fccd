package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseStatus(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    Status
		wantErr bool
	}{
		"pending":          {input: "PENDING", want: Pending},
		"accepted":         {input: "ACCEPTED", want: Accepted},
		"in transit":       {input: "IN_TRANSIT", want: InTransit},
		"out for delivery": {input: "OUT_FOR_DELIVERY", want: OutForDelivery},
		"delivered":        {input: "DELIVERED", want: Delivered},
		"cancelled":        {input: "CANCELLED", want: Cancelled},
		"failed":           {input: "FAILED", want: Failed},
		"unknown string":   {input: "UNKNOWN", wantErr: true},
		"lower case":       {input: "pending", wantErr: true},
		"empty":            {input: "", wantErr: true},
		"garbage":          {input: "SHIPPED", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseStatus(tc.input)

			if tc.wantErr {
				assert.Error(t, err)
				assert.Equal(t, Unknown, got)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.input, got.String())
		})
	}
}

func Test_Status_Validate(t *testing.T) {
	assert.NoError(t, Pending.Validate())
	assert.NoError(t, Failed.Validate())
	assert.Error(t, Unknown.Validate())
	assert.Error(t, Status(42).Validate())
}

func Test_Status_IsTerminal(t *testing.T) {
	assert.False(t, Pending.IsTerminal())
	assert.False(t, Accepted.IsTerminal())
	assert.False(t, InTransit.IsTerminal())
	assert.False(t, OutForDelivery.IsTerminal())
	assert.True(t, Delivered.IsTerminal())
	assert.True(t, Cancelled.IsTerminal())
	assert.True(t, Failed.IsTerminal())
}

func Test_Status_TransitionTo(t *testing.T) {
	tests := map[string]struct {
		from    Status
		to      Status
		wantErr bool
	}{
		"pending to accepted":             {from: Pending, to: Accepted},
		"accepted to in transit":          {from: Accepted, to: InTransit},
		"in transit to out for delivery":  {from: InTransit, to: OutForDelivery},
		"out for delivery to delivered":   {from: OutForDelivery, to: Delivered},
		"forward jump to delivered":       {from: InTransit, to: Delivered},
		"forward jump over accepted":      {from: Pending, to: InTransit},
		"cancel pending":                  {from: Pending, to: Cancelled},
		"cancel out for delivery":         {from: OutForDelivery, to: Cancelled},
		"fail accepted":                   {from: Accepted, to: Failed},
		"backwards":                       {from: InTransit, to: Accepted, wantErr: true},
		"no self transition":              {from: Accepted, to: Accepted, wantErr: true},
		"delivered is terminal":           {from: Delivered, to: Cancelled, wantErr: true},
		"cancelled is terminal":           {from: Cancelled, to: Pending, wantErr: true},
		"failed is terminal":              {from: Failed, to: Delivered, wantErr: true},
		"back into pending":               {from: Accepted, to: Pending, wantErr: true},
		"unknown source":                  {from: Unknown, to: Accepted, wantErr: true},
		"unknown target":                  {from: Pending, to: Unknown, wantErr: true},
		"cannot transition into terminal": {from: Delivered, to: Failed, wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := tc.from.TransitionTo(tc.to)

			if tc.wantErr {
				assert.Error(t, err)
				assert.Equal(t, Unknown, got)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.to, got)
		})
	}
}
