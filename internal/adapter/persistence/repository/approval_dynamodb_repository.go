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
	defaultApprovalsTableName = "approvals"
	approvalsProposalIDIndex  = "proposal_id-index"
)

type approvalItem struct {
	ID         string `dynamodbav:"id"`
	ProposalID string `dynamodbav:"proposal_id"`
	UserID     string `dynamodbav:"user_id"`
	Status     string `dynamodbav:"status"`
	Comments   string `dynamodbav:"comments,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// ApprovalDynamoRepository persists Approval entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, "{proposal_id}#{user_id}")
//   - GSI: proposal_id-index (PK: proposal_id)
//
// The composite PK gives each (proposal, user) pair exactly one mutable
// record, which is what the get-or-create flow relies on.

type ApprovalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IApprovalRepository = (*ApprovalDynamoRepository)(nil)

func NewApprovalDynamoRepository(ddb *dynamodb.Client) *ApprovalDynamoRepository {
	return &ApprovalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPROVALS_TABLE", defaultApprovalsTableName),
	}
}

func (r *ApprovalDynamoRepository) Create(ctx context.Context, a entities.Approval) (entities.Approval, error) {
	it := toApprovalItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Approval{}, err
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
		return entities.Approval{}, err
	}
	return a, nil
}

func (r *ApprovalDynamoRepository) GetByProposalAndUser(ctx context.Context, proposalID, userID string) (entities.Approval, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: entities.ApprovalID(proposalID, userID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Approval{}, err
	}
	if len(out.Item) == 0 {
		return entities.Approval{}, nil
	}

	var it approvalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Approval{}, err
	}
	return fromApprovalItem(it), nil
}

func (r *ApprovalDynamoRepository) ListByProposal(ctx context.Context, proposalID string) ([]entities.Approval, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(approvalsProposalIDIndex),
		KeyConditionExpression: aws.String("proposal_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: proposalID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Approval, 0, len(out.Items))
	for _, raw := range out.Items {
		var it approvalItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromApprovalItem(it))
	}
	return items, nil
}

func (r *ApprovalDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ApprovalStatus, comments string) (entities.Approval, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #comments = :comments, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":comments":   &types.AttributeValueMemberS{Value: comments},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#comments":   "comments",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Approval{}, nil
		}
		return entities.Approval{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Approval{}, nil
	}
	var it approvalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Approval{}, err
	}
	return fromApprovalItem(it), nil
}

func (r *ApprovalDynamoRepository) DeleteByProposal(ctx context.Context, proposalID string) error {
	items, err := r.ListByProposal(ctx, proposalID)
	if err != nil {
		return err
	}
	for _, a := range items {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: a.ID},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func toApprovalItem(a entities.Approval) approvalItem {
	return approvalItem{
		ID:         a.ID,
		ProposalID: a.ProposalID,
		UserID:     a.UserID,
		Status:     string(a.Status),
		Comments:   a.Comments,
		CreatedAt:  a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromApprovalItem(it approvalItem) entities.Approval {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Approval{
		ID:         it.ID,
		ProposalID: it.ProposalID,
		UserID:     it.UserID,
		Status:     entities.ApprovalStatus(it.Status),
		Comments:   it.Comments,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}
