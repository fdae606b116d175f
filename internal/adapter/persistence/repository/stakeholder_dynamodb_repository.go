package repository

import (
	"context"
	"errors"
	"time"

	"reform_flow/internal/domain/entities"
	"reform_flow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultStakeholdersTableName = "stakeholders"
	stakeholdersProposalIDIndex  = "proposal_id-index"
)

type stakeholderItem struct {
	ID          string `dynamodbav:"id"`
	ProposalID  string `dynamodbav:"proposal_id"`
	UserID      string `dynamodbav:"user_id"`
	Email       string `dynamodbav:"email"`
	Status      string `dynamodbav:"status"`
	Comments    string `dynamodbav:"comments,omitempty"`
	InvitedAt   string `dynamodbav:"invited_at"`
	RespondedAt string `dynamodbav:"responded_at,omitempty"`
}

// StakeholderDynamoRepository persists Stakeholder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, "{proposal_id}#{user_id}")
//   - GSI: proposal_id-index (PK: proposal_id)
//
// The composite PK enforces the one-invitation-per-pair invariant at the
// storage layer: Create with a duplicate pair trips the condition check.

type StakeholderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStakeholderRepository = (*StakeholderDynamoRepository)(nil)

func NewStakeholderDynamoRepository(ddb *dynamodb.Client) *StakeholderDynamoRepository {
	return &StakeholderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STAKEHOLDERS_TABLE", defaultStakeholdersTableName),
	}
}

func (r *StakeholderDynamoRepository) Create(ctx context.Context, s entities.Stakeholder) (entities.Stakeholder, error) {
	it := toStakeholderItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Stakeholder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Stakeholder{}, err
	}
	return s, nil
}

func (r *StakeholderDynamoRepository) GetByProposalAndUser(ctx context.Context, proposalID, userID string) (entities.Stakeholder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: entities.StakeholderID(proposalID, userID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Stakeholder{}, err
	}
	if len(out.Item) == 0 {
		return entities.Stakeholder{}, nil
	}

	var it stakeholderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Stakeholder{}, err
	}
	return fromStakeholderItem(it), nil
}

func (r *StakeholderDynamoRepository) ListByProposal(ctx context.Context, proposalID string) ([]entities.Stakeholder, error) {
	return r.queryByProposal(ctx, proposalID, nil)
}

func (r *StakeholderDynamoRepository) ListAcceptedByProposal(ctx context.Context, proposalID string) ([]entities.Stakeholder, error) {
	accepted := string(entities.StakeholderStatusAccepted)
	return r.queryByProposal(ctx, proposalID, &accepted)
}

func (r *StakeholderDynamoRepository) queryByProposal(ctx context.Context, proposalID string, status *string) ([]entities.Stakeholder, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(stakeholdersProposalIDIndex),
		KeyConditionExpression: aws.String("proposal_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: proposalID},
		},
	}
	if status != nil {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: *status}
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Stakeholder, 0, len(out.Items))
	for _, raw := range out.Items {
		var it stakeholderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromStakeholderItem(it))
	}
	return items, nil
}

func (r *StakeholderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.StakeholderStatus, comments string, respondedAt time.Time) (entities.Stakeholder, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #comments = :comments, #responded_at = :responded_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":       &types.AttributeValueMemberS{Value: string(status)},
			":comments":     &types.AttributeValueMemberS{Value: comments},
			":responded_at": &types.AttributeValueMemberS{Value: respondedAt.UTC().Format(time.RFC3339Nano)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#status":       "status",
			"#comments":     "comments",
			"#responded_at": "responded_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Stakeholder{}, nil
		}
		return entities.Stakeholder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Stakeholder{}, nil
	}
	var it stakeholderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Stakeholder{}, err
	}
	return fromStakeholderItem(it), nil
}

func (r *StakeholderDynamoRepository) DeleteByProposal(ctx context.Context, proposalID string) error {
	items, err := r.ListByProposal(ctx, proposalID)
	if err != nil {
		return err
	}
	for _, s := range items {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: s.ID},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func toStakeholderItem(s entities.Stakeholder) stakeholderItem {
	it := stakeholderItem{
		ID:         s.ID,
		ProposalID: s.ProposalID,
		UserID:     s.UserID,
		Email:      s.Email,
		Status:     string(s.Status),
		Comments:   s.Comments,
		InvitedAt:  s.InvitedAt.UTC().Format(time.RFC3339Nano),
	}
	if s.RespondedAt != nil {
		it.RespondedAt = s.RespondedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromStakeholderItem(it stakeholderItem) entities.Stakeholder {
	invitedAt, _ := time.Parse(time.RFC3339Nano, it.InvitedAt)
	s := entities.Stakeholder{
		ID:         it.ID,
		ProposalID: it.ProposalID,
		UserID:     it.UserID,
		Email:      it.Email,
		Status:     entities.StakeholderStatus(it.Status),
		Comments:   it.Comments,
		InvitedAt:  invitedAt,
	}
	if it.RespondedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.RespondedAt); err == nil {
			s.RespondedAt = &t
		}
	}
	return s
}
